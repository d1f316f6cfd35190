// Package adapters provides the gorm queries behind the reports.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	customerentity "payments_backend/internal/feature/customers/domain/entity"
	paymententity "payments_backend/internal/feature/payments/domain/entity"
	"payments_backend/internal/feature/reports/domain/entity"
	"payments_backend/internal/feature/reports/usecase"
	"payments_backend/internal/platform/db"
	"payments_backend/internal/shared/dates"
)

const rowColumns = "p.customer_id, c.name, c.phone, c.email, p.amount, p.due_date, p.payment_date"

type reportGorm struct {
	db *gorm.DB
}

var _ usecase.ReportRepository = (*reportGorm)(nil)

// NewReportRepository returns the gorm-backed report queries.
func NewReportRepository(gdb *gorm.DB) *reportGorm {
	return &reportGorm{db: gdb}
}

func (r *reportGorm) payments(ctx context.Context) *gorm.DB {
	return db.Conn(ctx, r.db).Model(&paymententity.Payment{})
}

func (r *reportGorm) CountActiveCustomers(ctx context.Context) (int64, error) {
	var n int64
	err := db.Conn(ctx, r.db).Model(&customerentity.Customer{}).Where("active = ?", true).Count(&n).Error
	return n, err
}

type countSum struct {
	N     int64
	Total float64
}

func (r *reportGorm) PendingTotals(ctx context.Context) (int64, float64, error) {
	var cs countSum
	err := r.payments(ctx).
		Select("COUNT(*) AS n, COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", paymententity.StatusPending).
		Scan(&cs).Error
	return cs.N, cs.Total, err
}

func (r *reportGorm) CountOverdue(ctx context.Context, today time.Time) (int64, error) {
	var n int64
	err := r.payments(ctx).
		Where("status = ? AND due_date < ?", paymententity.StatusPending, today).
		Count(&n).Error
	return n, err
}

func (r *reportGorm) PaidTotals(ctx context.Context, rng dates.Range) (float64, int64, error) {
	var total float64
	err := r.paidIn(ctx, rng).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, 0, err
	}

	var customers int64
	err = r.paidIn(ctx, rng).Distinct("customer_id").Count(&customers).Error
	return total, customers, err
}

func (r *reportGorm) paidIn(ctx context.Context, rng dates.Range) *gorm.DB {
	return r.payments(ctx).Where("status = ? AND payment_date >= ? AND payment_date < ?",
		paymententity.StatusPaid, rng.Start, rng.End)
}

func (r *reportGorm) OverdueRows(ctx context.Context, today time.Time) ([]entity.PaymentRow, error) {
	return r.rows(db.Conn(ctx, r.db).
		Where("p.status = ? AND p.due_date < ?", paymententity.StatusPending, today))
}

func (r *reportGorm) PaidRows(ctx context.Context, rng dates.Range) ([]entity.PaymentRow, error) {
	return r.rows(db.Conn(ctx, r.db).
		Where("p.status = ? AND p.payment_date >= ? AND p.payment_date < ?", paymententity.StatusPaid, rng.Start, rng.End))
}

// rows joins payments with their customer, whatever the customer's active flag.
func (r *reportGorm) rows(q *gorm.DB) ([]entity.PaymentRow, error) {
	rows := []entity.PaymentRow{}
	err := q.Table("payments AS p").
		Select(rowColumns).
		Joins("JOIN customers AS c ON c.id = p.customer_id").
		Order("p.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportGorm) CustomerStats(ctx context.Context, customerID uint) (entity.CustomerStats, error) {
	var s entity.CustomerStats
	of := func() *gorm.DB { return r.payments(ctx).Where("customer_id = ?", customerID) }

	if err := of().Count(&s.TotalPayments).Error; err != nil {
		return s, err
	}
	if err := of().Where("status = ?", paymententity.StatusPaid).Count(&s.PaidPayments).Error; err != nil {
		return s, err
	}
	var cs countSum
	err := of().
		Select("COUNT(*) AS n, COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", paymententity.StatusPending).
		Scan(&cs).Error
	if err != nil {
		return s, err
	}
	s.PendingPayments, s.PendingAmount = cs.N, cs.Total
	return s, nil
}
