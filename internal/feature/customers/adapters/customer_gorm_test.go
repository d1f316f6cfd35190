package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"payments_backend/internal/feature/customers/domain/entity"
	"payments_backend/internal/feature/customers/usecase"
	"payments_backend/internal/platform/db"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), db.GormConfig())
	require.NoError(t, err, "failed to initialize test database")
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&entity.Customer{}), "failed to migrate table")
	return gdb
}

func strPtr(s string) *string { return &s }

func TestCustomerGorm_Create(t *testing.T) {
	t.Run("nullable national id may repeat", func(t *testing.T) {
		repo := NewCustomerRepository(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Create(ctx, &entity.Customer{Name: "Ana", Active: true}))
		require.NoError(t, repo.Create(ctx, &entity.Customer{Name: "Bia", Active: true}))
	})

	t.Run("duplicate national id", func(t *testing.T) {
		repo := NewCustomerRepository(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, repo.Create(ctx, &entity.Customer{Name: "Ana", NationalID: strPtr("123"), Active: true}))

		err := repo.Create(ctx, &entity.Customer{Name: "Bia", NationalID: strPtr("123"), Active: true})

		assert.ErrorIs(t, err, usecase.ErrNationalIDTaken)
	})
}

func TestCustomerGorm_Finders(t *testing.T) {
	repo := NewCustomerRepository(setupTestDB(t))
	ctx := context.Background()
	ana := &entity.Customer{Name: "Ana", NationalID: strPtr("111"), Active: true}
	require.NoError(t, repo.Create(ctx, ana))

	got, err := repo.FindByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	got, err = repo.FindByNationalID(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, ana.ID, got.ID)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, usecase.ErrCustomerNotFound)

	_, err = repo.FindByNationalID(ctx, "999")
	assert.ErrorIs(t, err, usecase.ErrCustomerNotFound)
}

func TestCustomerGorm_ListActive(t *testing.T) {
	repo := NewCustomerRepository(setupTestDB(t))
	ctx := context.Background()

	for _, c := range []*entity.Customer{
		{Name: "Maria Souza", NationalID: strPtr("52998224725"), Active: true},
		{Name: "Carlos", Active: true},
		{Name: "maria_lima", Active: true},
		{Name: "100% Tintas", Active: true},
	} {
		require.NoError(t, repo.Create(ctx, c))
	}
	gone := &entity.Customer{Name: "Mariana", Active: true}
	require.NoError(t, repo.Create(ctx, gone))
	gone.Active = false
	require.NoError(t, repo.Update(ctx, gone))

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"no search ordered by name", "", []string{"100% Tintas", "Carlos", "Maria Souza", "maria_lima"}},
		{"case insensitive name", "MARIA", []string{"Maria Souza", "maria_lima"}},
		{"national id", "982247", []string{"Maria Souza"}},
		{"underscore is literal", "a_l", []string{"maria_lima"}},
		{"percent is literal", "0%", []string{"100% Tintas"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customers, err := repo.ListActive(ctx, tt.search)
			require.NoError(t, err)

			names := []string{}
			for _, c := range customers {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
