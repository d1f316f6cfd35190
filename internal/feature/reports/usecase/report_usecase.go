// Package usecase computes the read-only reports over customers and payments.
package usecase

import (
	"context"
	"fmt"
	"time"

	"payments_backend/internal/feature/reports/domain/entity"
	"payments_backend/internal/shared/dates"
)

// ReportRepository runs the aggregate queries behind the reports.
type ReportRepository interface {
	CountActiveCustomers(ctx context.Context) (int64, error)
	// PendingTotals returns the count and amount of every pending payment.
	PendingTotals(ctx context.Context) (int64, float64, error)
	// CountOverdue counts pending payments due strictly before today.
	CountOverdue(ctx context.Context, today time.Time) (int64, error)
	// PaidTotals returns the amount received and the number of distinct
	// customers that paid within r.
	PaidTotals(ctx context.Context, r dates.Range) (float64, int64, error)
	// OverdueRows returns pending payments due strictly before today.
	OverdueRows(ctx context.Context, today time.Time) ([]entity.PaymentRow, error)
	// PaidRows returns paid payments with a payment date within r.
	PaidRows(ctx context.Context, r dates.Range) ([]entity.PaymentRow, error)
	CustomerStats(ctx context.Context, customerID uint) (entity.CustomerStats, error)
}

type reportUsecase struct {
	reports ReportRepository
	clock   dates.Clock
}

// NewReportUsecase returns the reporting engine. clock decides what "today" is.
func NewReportUsecase(reports ReportRepository, clock dates.Clock) *reportUsecase {
	return &reportUsecase{reports: reports, clock: clock}
}

// Dashboard returns the headline counters for the current day and month.
func (u *reportUsecase) Dashboard(ctx context.Context) (entity.DashboardStats, error) {
	var (
		s   entity.DashboardStats
		err error
	)
	if s.ActiveCustomers, err = u.reports.CountActiveCustomers(ctx); err != nil {
		return s, fmt.Errorf("failed to count customers: %w", err)
	}
	if s.PendingCount, s.PendingAmount, err = u.reports.PendingTotals(ctx); err != nil {
		return s, fmt.Errorf("failed to sum pending payments: %w", err)
	}
	if s.OverdueCount, err = u.reports.CountOverdue(ctx, u.clock.Today()); err != nil {
		return s, fmt.Errorf("failed to count overdue payments: %w", err)
	}
	if s.ReceivedThisMonth, s.CustomersPaidThisMonth, err = u.reports.PaidTotals(ctx, u.clock.CurrentMonth()); err != nil {
		return s, fmt.Errorf("failed to sum received payments: %w", err)
	}
	return s, nil
}

// Delinquents groups the overdue pending payments by customer.
func (u *reportUsecase) Delinquents(ctx context.Context) ([]entity.Delinquent, error) {
	rows, err := u.reports.OverdueRows(ctx, u.clock.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to load overdue payments: %w", err)
	}
	return GroupDelinquents(rows), nil
}

// MonthlyPayers groups the payments settled this month by customer.
func (u *reportUsecase) MonthlyPayers(ctx context.Context) ([]entity.MonthlyPayer, error) {
	rows, err := u.reports.PaidRows(ctx, u.clock.CurrentMonth())
	if err != nil {
		return nil, fmt.Errorf("failed to load payments of the month: %w", err)
	}
	return GroupMonthlyPayers(rows), nil
}

func (u *reportUsecase) CustomerStats(ctx context.Context, customerID uint) (entity.CustomerStats, error) {
	s, err := u.reports.CustomerStats(ctx, customerID)
	if err != nil {
		return s, fmt.Errorf("failed to compute customer stats: %w", err)
	}
	return s, nil
}
