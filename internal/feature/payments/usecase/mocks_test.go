package usecase

import (
	"context"

	"payments_backend/internal/feature/payments/domain/entity"
)

// mockPaymentRepository is a mock implementation of PaymentRepository.
type mockPaymentRepository struct {
	CreateFunc   func(ctx context.Context, p *entity.Payment) error
	UpdateFunc   func(ctx context.Context, p *entity.Payment) error
	DeleteFunc   func(ctx context.Context, id uint) error
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Payment, error)
	ListFunc     func(ctx context.Context, f ListFilter) ([]entity.PaymentView, error)
	HistoryFunc  func(ctx context.Context, customerID uint) ([]entity.HistoryEntry, error)
}

func (m *mockPaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	p.ID = 1
	return nil
}

func (m *mockPaymentRepository) Update(ctx context.Context, p *entity.Payment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPaymentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, id uint) (*entity.Payment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrPaymentNotFound
}

func (m *mockPaymentRepository) List(ctx context.Context, f ListFilter) ([]entity.PaymentView, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return []entity.PaymentView{}, nil
}

func (m *mockPaymentRepository) History(ctx context.Context, customerID uint) ([]entity.HistoryEntry, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, customerID)
	}
	return []entity.HistoryEntry{}, nil
}

// stubCustomers reports every id in known as existing.
type stubCustomers struct {
	known map[uint]bool
	err   error
}

func (s stubCustomers) CustomerExists(ctx context.Context, id uint) (bool, error) {
	return s.known[id], s.err
}

type auditCall struct {
	UserID      uint
	Action      string
	Description string
}

type recordingAudit struct {
	calls []auditCall
}

func (r *recordingAudit) Record(ctx context.Context, userID uint, action, description string) {
	r.calls = append(r.calls, auditCall{UserID: userID, Action: action, Description: description})
}

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
