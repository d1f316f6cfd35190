package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"payments_backend/internal/feature/audit/domain/entity"
	authentity "payments_backend/internal/feature/auth/domain/entity"
)

const minPasswordLength = 6

// CreateUserInput carries the fields of a new user.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries the editable fields. An empty Password keeps the
// current hash.
type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type userUsecase struct {
	users UserRepository
	tx    Transactor
	audit AuditRecorder
}

// NewUserUsecase returns the user management usecase.
func NewUserUsecase(users UserRepository, tx Transactor, audit AuditRecorder) *userUsecase {
	return &userUsecase{users: users, tx: tx, audit: audit}
}

// List returns the active users ordered by name.
func (u *userUsecase) List(ctx context.Context) ([]authentity.User, error) {
	users, err := u.users.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Get returns one user by id.
func (u *userUsecase) Get(ctx context.Context, id uint) (*authentity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Create registers a user. Role defaults to operator.
func (u *userUsecase) Create(ctx context.Context, actorID uint, in CreateUserInput) (*authentity.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	role := in.Role
	if role == "" {
		role = authentity.RoleOperator
	}
	if !authentity.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &authentity.User{
		Name:         name,
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}

	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := u.users.FindByEmail(ctx, user.Email); err == nil {
			return ErrEmailAlreadyExists
		} else if !errors.Is(err, ErrUserNotFound) {
			return err
		}
		return u.users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	u.audit.Record(ctx, actorID, entity.ActionCreateUser, fmt.Sprintf("User %s created", user.Name))
	return user, nil
}

// Update edits a user. The email must not belong to a different user.
func (u *userUsecase) Update(ctx context.Context, actorID, id uint, in UpdateUserInput) (*authentity.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if in.Role != "" && !authentity.ValidRole(in.Role) {
		return nil, ErrInvalidRole
	}
	var hash string
	if in.Password != "" {
		h, err := hashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}

	var user *authentity.User
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := u.users.FindByID(ctx, id)
		if err != nil {
			return err
		}

		email := normalizeEmail(in.Email)
		if other, err := u.users.FindByEmail(ctx, email); err == nil && other.ID != id {
			return ErrEmailTaken
		} else if err != nil && !errors.Is(err, ErrUserNotFound) {
			return err
		}

		current.Name = name
		current.Email = email
		if in.Role != "" {
			current.Role = in.Role
		}
		if hash != "" {
			current.PasswordHash = hash
		}
		user = current
		return u.users.Update(ctx, current)
	})
	if err != nil {
		return nil, err
	}

	u.audit.Record(ctx, actorID, entity.ActionUpdateUser, fmt.Sprintf("User %s updated", user.Name))
	return user, nil
}

// Deactivate soft-deletes a user. Tokens already issued to the user stay
// valid until they expire.
func (u *userUsecase) Deactivate(ctx context.Context, actorID, id uint) error {
	var user *authentity.User
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := u.users.FindByID(ctx, id)
		if err != nil {
			return err
		}
		current.Active = false
		user = current
		return u.users.Update(ctx, current)
	})
	if err != nil {
		return err
	}

	u.audit.Record(ctx, actorID, entity.ActionDeleteUser, fmt.Sprintf("User %s deactivated", user.Name))
	return nil
}

func hashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", ErrPasswordTooShort
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
