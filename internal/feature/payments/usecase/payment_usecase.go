package usecase

import (
	"context"
	"fmt"
	"strings"

	auditentity "payments_backend/internal/feature/audit/domain/entity"
	"payments_backend/internal/feature/payments/domain/entity"
	"payments_backend/internal/platform/metrics"
	"payments_backend/internal/shared/apperr"
	"payments_backend/internal/shared/dates"
)

// ListFilter narrows a payment listing. Zero fields do not filter.
type ListFilter struct {
	CustomerID uint
	Status     string
	// PaidIn restricts to payments whose payment date falls in the range.
	PaidIn *dates.Range
}

// PaymentRepository abstracts the persistence of payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	Update(ctx context.Context, p *entity.Payment) error
	Delete(ctx context.Context, id uint) error
	// FindByID returns ErrPaymentNotFound for an unknown id.
	FindByID(ctx context.Context, id uint) (*entity.Payment, error)
	// List returns matching payments ordered by due date, newest first.
	List(ctx context.Context, f ListFilter) ([]entity.PaymentView, error)
	// History returns every payment of a customer ordered by due date, newest first.
	History(ctx context.Context, customerID uint) ([]entity.HistoryEntry, error)
}

// CustomerChecker tells whether a customer exists.
type CustomerChecker interface {
	CustomerExists(ctx context.Context, id uint) (bool, error)
}

// AuditRecorder appends an entry to the audit log.
type AuditRecorder interface {
	Record(ctx context.Context, userID uint, action, description string)
}

// Transactor runs fn in one unit of work.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreateInput carries a new payment. DueDate is YYYY-MM-DD.
type CreateInput struct {
	CustomerID  uint
	Amount      float64
	DueDate     string
	Description string
	Notes       string
}

// ListInput carries raw listing filters. Month is YYYY-MM.
type ListInput struct {
	CustomerID uint
	Status     string
	Month      string
}

type paymentUsecase struct {
	payments  PaymentRepository
	customers CustomerChecker
	tx        Transactor
	audit     AuditRecorder
	clock     dates.Clock
}

// NewPaymentUsecase returns the payment usecase. clock decides what "today" is.
func NewPaymentUsecase(payments PaymentRepository, customers CustomerChecker, tx Transactor, audit AuditRecorder, clock dates.Clock) *paymentUsecase {
	return &paymentUsecase{payments: payments, customers: customers, tx: tx, audit: audit, clock: clock}
}

// Create registers a pending payment for an existing customer.
func (u *paymentUsecase) Create(ctx context.Context, actorID uint, in CreateInput) (*entity.Payment, error) {
	if in.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	due, err := dates.Parse(strings.TrimSpace(in.DueDate))
	if err != nil {
		return nil, apperr.Validation(err.Error())
	}

	p := &entity.Payment{
		CustomerID:  in.CustomerID,
		Amount:      in.Amount,
		DueDate:     due,
		Status:      entity.StatusPending,
		Description: strings.TrimSpace(in.Description),
		Notes:       in.Notes,
	}
	if actorID != 0 {
		p.RegisteredByID = &actorID
	}

	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := u.customers.CustomerExists(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCustomerNotFound
		}
		return u.payments.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	metrics.PaymentTransitionsTotal.WithLabelValues(entity.StatusPending).Inc()
	u.audit.Record(ctx, actorID, auditentity.ActionCreatePayment,
		fmt.Sprintf("Payment #%d of %.2f created for customer #%d", p.ID, p.Amount, p.CustomerID))
	return p, nil
}

// List returns payments matching in, newest due date first.
func (u *paymentUsecase) List(ctx context.Context, in ListInput) ([]entity.PaymentView, error) {
	f := ListFilter{CustomerID: in.CustomerID, Status: strings.TrimSpace(in.Status)}
	if f.Status != "" && !entity.ValidStatus(f.Status) {
		return nil, ErrInvalidStatus
	}
	if m := strings.TrimSpace(in.Month); m != "" {
		r, err := dates.ParseMonth(m)
		if err != nil {
			return nil, apperr.Validation(err.Error())
		}
		f.PaidIn = &r
	}

	views, err := u.payments.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return views, nil
}

// Pay settles a payment today. Settling an already paid payment stamps it
// again with the new date and method.
func (u *paymentUsecase) Pay(ctx context.Context, actorID, id uint, method string) (*entity.Payment, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		method = entity.DefaultMethod
	}

	var p *entity.Payment
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := u.payments.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current.Status == entity.StatusCancelled {
			return ErrCancelledSettle
		}
		today := u.clock.Today()
		current.Status = entity.StatusPaid
		current.PaymentDate = &today
		current.Method = method
		p = current
		return u.payments.Update(ctx, current)
	})
	if err != nil {
		return nil, err
	}

	metrics.PaymentTransitionsTotal.WithLabelValues(entity.StatusPaid).Inc()
	u.audit.Record(ctx, actorID, auditentity.ActionSettlePayment,
		fmt.Sprintf("Payment #%d settled via %s", p.ID, p.Method))
	return p, nil
}

// Cancel cancels a pending payment. Cancelling a cancelled payment is a no-op.
func (u *paymentUsecase) Cancel(ctx context.Context, actorID, id uint) (*entity.Payment, error) {
	var (
		p       *entity.Payment
		changed bool
	)
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := u.payments.FindByID(ctx, id)
		if err != nil {
			return err
		}
		p = current
		if current.Status == entity.StatusCancelled {
			return nil
		}
		if !current.IsPending() {
			return ErrPaidCancel
		}
		current.Status = entity.StatusCancelled
		changed = true
		return u.payments.Update(ctx, current)
	})
	if err != nil {
		return nil, err
	}

	if changed {
		metrics.PaymentTransitionsTotal.WithLabelValues(entity.StatusCancelled).Inc()
		u.audit.Record(ctx, actorID, auditentity.ActionCancelPayment, fmt.Sprintf("Payment #%d cancelled", p.ID))
	}
	return p, nil
}

// Delete removes a payment permanently.
func (u *paymentUsecase) Delete(ctx context.Context, actorID, id uint) error {
	var p *entity.Payment
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := u.payments.FindByID(ctx, id)
		if err != nil {
			return err
		}
		p = current
		return u.payments.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	u.audit.Record(ctx, actorID, auditentity.ActionDeletePayment,
		fmt.Sprintf("Payment #%d of customer #%d deleted", p.ID, p.CustomerID))
	return nil
}

// History returns the payments of a customer. An unknown customer has no history.
func (u *paymentUsecase) History(ctx context.Context, customerID uint) ([]entity.HistoryEntry, error) {
	entries, err := u.payments.History(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment history: %w", err)
	}
	return entries, nil
}
