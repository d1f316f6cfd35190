// Package adapters provides the repository implementations for the customers feature.
package adapters

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"payments_backend/internal/feature/customers/domain/entity"
	"payments_backend/internal/feature/customers/usecase"
	"payments_backend/internal/platform/db"
)

type customerGorm struct {
	db *gorm.DB
}

var _ usecase.CustomerRepository = (*customerGorm)(nil)

// NewCustomerRepository returns the gorm-backed customer store.
func NewCustomerRepository(gdb *gorm.DB) *customerGorm {
	return &customerGorm{db: gdb}
}

func (r *customerGorm) Create(ctx context.Context, c *entity.Customer) error {
	return translate(db.Conn(ctx, r.db).Create(c).Error)
}

func (r *customerGorm) Update(ctx context.Context, c *entity.Customer) error {
	return translate(db.Conn(ctx, r.db).Save(c).Error)
}

func (r *customerGorm) FindByID(ctx context.Context, id uint) (*entity.Customer, error) {
	return r.first(db.Conn(ctx, r.db).Where("id = ?", id))
}

func (r *customerGorm) FindByNationalID(ctx context.Context, nationalID string) (*entity.Customer, error) {
	return r.first(db.Conn(ctx, r.db).Where("national_id = ?", nationalID))
}

func (r *customerGorm) ListActive(ctx context.Context, search string) ([]entity.Customer, error) {
	q := db.Conn(ctx, r.db).Where("active = ?", true)
	if search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		q = q.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(COALESCE(national_id, '')) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	customers := []entity.Customer{}
	if err := q.Order("name ASC").Order("id ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerGorm) first(q *gorm.DB) (*entity.Customer, error) {
	var c entity.Customer
	if err := q.First(&c).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, usecase.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

func translate(err error) error {
	if db.IsDuplicateKey(err) {
		return usecase.ErrNationalIDTaken
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern escaped with '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
