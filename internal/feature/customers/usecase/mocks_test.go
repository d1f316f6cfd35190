package usecase

import (
	"context"

	"payments_backend/internal/feature/customers/domain/entity"
)

// mockCustomerRepository is a mock implementation of CustomerRepository.
type mockCustomerRepository struct {
	CreateFunc           func(ctx context.Context, c *entity.Customer) error
	UpdateFunc           func(ctx context.Context, c *entity.Customer) error
	FindByIDFunc         func(ctx context.Context, id uint) (*entity.Customer, error)
	FindByNationalIDFunc func(ctx context.Context, nationalID string) (*entity.Customer, error)
	ListActiveFunc       func(ctx context.Context, search string) ([]entity.Customer, error)
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	c.ID = 1
	return nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *entity.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id uint) (*entity.Customer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrCustomerNotFound
}

func (m *mockCustomerRepository) FindByNationalID(ctx context.Context, nationalID string) (*entity.Customer, error) {
	if m.FindByNationalIDFunc != nil {
		return m.FindByNationalIDFunc(ctx, nationalID)
	}
	return nil, ErrCustomerNotFound
}

func (m *mockCustomerRepository) ListActive(ctx context.Context, search string) ([]entity.Customer, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, search)
	}
	return []entity.Customer{}, nil
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
