package usecase

import (
	"context"
	"time"

	authentity "payments_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of UserRepository.
type mockUserRepository struct {
	CreateFunc            func(ctx context.Context, user *authentity.User) error
	UpdateFunc            func(ctx context.Context, user *authentity.User) error
	FindByIDFunc          func(ctx context.Context, id uint) (*authentity.User, error)
	FindByEmailFunc       func(ctx context.Context, email string) (*authentity.User, error)
	FindActiveByEmailFunc func(ctx context.Context, email string) (*authentity.User, error)
	ListActiveFunc        func(ctx context.Context) ([]authentity.User, error)
	ExistsWithRoleFunc    func(ctx context.Context, role string) (bool, error)
	TouchLastLoginFunc    func(ctx context.Context, id uint, at time.Time) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *authentity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *authentity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*authentity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*authentity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindActiveByEmail(ctx context.Context, email string) (*authentity.User, error) {
	if m.FindActiveByEmailFunc != nil {
		return m.FindActiveByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) ListActive(ctx context.Context) ([]authentity.User, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return []authentity.User{}, nil
}

func (m *mockUserRepository) ExistsWithRole(ctx context.Context, role string) (bool, error) {
	if m.ExistsWithRoleFunc != nil {
		return m.ExistsWithRoleFunc(ctx, role)
	}
	return false, nil
}

func (m *mockUserRepository) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	if m.TouchLastLoginFunc != nil {
		return m.TouchLastLoginFunc(ctx, id, at)
	}
	return nil
}

// mockTokenIssuer is a mock implementation of TokenIssuer.
type mockTokenIssuer struct {
	IssueFunc func(userID uint, email, role string) (string, error)
}

func (m *mockTokenIssuer) Issue(userID uint, email, role string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, email, role)
	}
	return "mock-jwt-token", nil
}

type auditCall struct {
	UserID      uint
	Action      string
	Description string
}

// recordingAudit collects audit calls.
type recordingAudit struct {
	calls []auditCall
}

func (r *recordingAudit) Record(ctx context.Context, userID uint, action, description string) {
	r.calls = append(r.calls, auditCall{UserID: userID, Action: action, Description: description})
}

// passthroughTx runs fn directly, optionally failing afterwards.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}
