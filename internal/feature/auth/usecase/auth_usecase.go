package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"payments_backend/internal/feature/audit/domain/entity"
	authentity "payments_backend/internal/feature/auth/domain/entity"
	"payments_backend/internal/platform/metrics"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared when the email is unknown so that both failure paths
// cost one bcrypt comparison.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence of users.
// Interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. A taken email yields ErrEmailAlreadyExists.
	Create(ctx context.Context, user *authentity.User) error
	// Update saves every column of user. A taken email yields ErrEmailTaken.
	Update(ctx context.Context, user *authentity.User) error
	// FindByID returns the user regardless of its active flag.
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
	// FindByEmail returns the user regardless of its active flag.
	FindByEmail(ctx context.Context, email string) (*authentity.User, error)
	// FindActiveByEmail returns the active user with email.
	FindActiveByEmail(ctx context.Context, email string) (*authentity.User, error)
	// ListActive returns active users ordered by name.
	ListActive(ctx context.Context) ([]authentity.User, error)
	// ExistsWithRole reports whether an active user holds role.
	ExistsWithRole(ctx context.Context, role string) (bool, error)
	// TouchLastLogin stamps the last login time.
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(userID uint, email, role string) (string, error)
}

// AuditRecorder appends audit entries. It never fails the caller.
type AuditRecorder interface {
	Record(ctx context.Context, userID uint, action, description string)
}

// Transactor runs fn as one atomic unit of work.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// LoginResult is what a successful login returns.
type LoginResult struct {
	Token string
	User  *authentity.User
}

type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
	audit  AuditRecorder
	now    func() time.Time
}

// NewAuthUsecase returns the login usecase. tokens signs the issued credentials.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, audit AuditRecorder) *authUsecase {
	return &authUsecase{users: users, tokens: tokens, audit: audit, now: time.Now}
}

// Login checks the credentials of an active user and issues a token.
// Unknown email, inactive user and wrong password all yield
// ErrInvalidCredentials after one bcrypt comparison.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	user, err := u.users.FindActiveByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	hash := dummyHash
	if user != nil {
		hash = user.PasswordHash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if user == nil || compareErr != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := u.now().UTC()
	if err := u.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}
	user.LastLoginAt = &now

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	u.audit.Record(ctx, user.ID, entity.ActionLogin, fmt.Sprintf("User %s logged in", user.Name))

	return &LoginResult{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
