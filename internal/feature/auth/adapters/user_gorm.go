// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"payments_backend/internal/feature/auth/domain/entity"
	"payments_backend/internal/feature/auth/usecase"
	"payments_backend/internal/platform/db"
)

// userGorm implements usecase.UserRepository with gorm. Every call joins the
// transaction carried by ctx, if any.
type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository returns the gorm-backed user store.
func NewUserRepository(gdb *gorm.DB) *userGorm {
	return &userGorm{db: gdb}
}

// Create returns usecase.ErrEmailAlreadyExists on a unique violation.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := db.Conn(ctx, r.db).Create(u).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// Update returns usecase.ErrEmailTaken on a unique violation.
func (r *userGorm) Update(ctx context.Context, u *entity.User) error {
	if err := db.Conn(ctx, r.db).Save(u).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return r.first(db.Conn(ctx, r.db).Where("id = ?", id))
}

func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(db.Conn(ctx, r.db).Where("email = ?", email))
}

func (r *userGorm) FindActiveByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(db.Conn(ctx, r.db).Where("email = ? AND active = ?", email, true))
}

func (r *userGorm) ListActive(ctx context.Context) ([]entity.User, error) {
	users := []entity.User{}
	err := db.Conn(ctx, r.db).
		Where("active = ?", true).
		Order("name ASC").
		Order("id ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userGorm) ExistsWithRole(ctx context.Context, role string) (bool, error) {
	var n int64
	err := db.Conn(ctx, r.db).Model(&entity.User{}).
		Where("role = ? AND active = ?", role, true).
		Count(&n).Error
	return n > 0, err
}

func (r *userGorm) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	return db.Conn(ctx, r.db).Model(&entity.User{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}

func (r *userGorm) first(q *gorm.DB) (*entity.User, error) {
	var u entity.User
	if err := q.First(&u).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
