// Package adapters provides the repository implementations for the payments feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"payments_backend/internal/feature/payments/domain/entity"
	"payments_backend/internal/feature/payments/usecase"
	"payments_backend/internal/platform/db"
)

type paymentGorm struct {
	db *gorm.DB
}

var (
	_ usecase.PaymentRepository = (*paymentGorm)(nil)
	_ usecase.CustomerChecker   = (*paymentGorm)(nil)
)

// NewPaymentRepository returns the gorm-backed payment store.
// It also answers customer existence checks for the usecase.
func NewPaymentRepository(gdb *gorm.DB) *paymentGorm {
	return &paymentGorm{db: gdb}
}

func (r *paymentGorm) Create(ctx context.Context, p *entity.Payment) error {
	return db.Conn(ctx, r.db).Create(p).Error
}

func (r *paymentGorm) Update(ctx context.Context, p *entity.Payment) error {
	return db.Conn(ctx, r.db).Save(p).Error
}

func (r *paymentGorm) Delete(ctx context.Context, id uint) error {
	res := db.Conn(ctx, r.db).Delete(&entity.Payment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrPaymentNotFound
	}
	return nil
}

func (r *paymentGorm) FindByID(ctx context.Context, id uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := db.Conn(ctx, r.db).Where("id = ?", id).First(&p).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, usecase.ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *paymentGorm) List(ctx context.Context, f usecase.ListFilter) ([]entity.PaymentView, error) {
	q := db.Conn(ctx, r.db).
		Table("payments AS p").
		Select("p.*, c.name AS customer_name, c.national_id AS customer_national_id, c.phone AS customer_phone").
		Joins("JOIN customers AS c ON c.id = p.customer_id")

	if f.CustomerID != 0 {
		q = q.Where("p.customer_id = ?", f.CustomerID)
	}
	if f.Status != "" {
		q = q.Where("p.status = ?", f.Status)
	}
	if f.PaidIn != nil {
		q = q.Where("p.payment_date >= ? AND p.payment_date < ?", f.PaidIn.Start, f.PaidIn.End)
	}

	views := []entity.PaymentView{}
	if err := q.Order("p.due_date DESC").Order("p.id DESC").Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *paymentGorm) History(ctx context.Context, customerID uint) ([]entity.HistoryEntry, error) {
	entries := []entity.HistoryEntry{}
	err := db.Conn(ctx, r.db).
		Table("payments AS p").
		Select("p.*, u.name AS registered_by_name").
		Joins("LEFT JOIN users AS u ON u.id = p.registered_by_id").
		Where("p.customer_id = ?", customerID).
		Order("p.due_date DESC").
		Order("p.id DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// CustomerExists reports whether a customer row with id exists, active or not.
func (r *paymentGorm) CustomerExists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := db.Conn(ctx, r.db).Table("customers").Where("id = ?", id).Count(&n).Error
	return n > 0, err
}
