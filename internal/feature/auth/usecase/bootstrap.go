package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	authentity "payments_backend/internal/feature/auth/domain/entity"
)

// AdminSeed is the account created when the store has no administrator.
type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

// EnsureAdmin creates the seed administrator when no active admin exists.
// It reports whether a user was created. If the seed email already belongs to
// someone, including a deactivated admin, nothing is created and a warning is
// logged.
func EnsureAdmin(ctx context.Context, users UserRepository, seed AdminSeed, log zerolog.Logger) (bool, error) {
	exists, err := users.ExistsWithRole(ctx, authentity.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("failed to look up administrators: %w", err)
	}
	if exists {
		return false, nil
	}

	email := normalizeEmail(seed.Email)
	if holder, err := users.FindByEmail(ctx, email); err == nil {
		msg := "no administrator exists and the seed email belongs to another user, skipping bootstrap"
		if holder.IsAdmin() {
			msg = "no active administrator exists and the seed email belongs to a deactivated administrator, skipping bootstrap"
		}
		log.Warn().Uint("user_id", holder.ID).Str("email", email).Msg(msg)
		return false, nil
	} else if !errors.Is(err, ErrUserNotFound) {
		return false, fmt.Errorf("failed to look up seed email: %w", err)
	}

	hash, err := hashPassword(seed.Password)
	if err != nil {
		return false, err
	}
	admin := &authentity.User{
		Name:         seed.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         authentity.RoleAdmin,
		Active:       true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("failed to create administrator: %w", err)
	}

	log.Info().Uint("user_id", admin.ID).Str("email", email).Msg("bootstrap administrator created")
	return true, nil
}
