// Package usecase implements the audit log.
package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"payments_backend/internal/feature/audit/domain/entity"
	"payments_backend/internal/platform/metrics"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// EntryRepository persists audit entries.
type EntryRepository interface {
	// Append stores e outside of any caller transaction.
	Append(ctx context.Context, e *entity.Entry) error
	// Recent returns at most limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]entity.EntryView, error)
}

type auditUsecase struct {
	entries EntryRepository
	log     zerolog.Logger
}

// NewAuditUsecase returns the audit log. Write failures are logged to log.
func NewAuditUsecase(entries EntryRepository, log zerolog.Logger) *auditUsecase {
	return &auditUsecase{entries: entries, log: log}
}

// Record appends an entry. A failed write is logged and counted, never returned,
// so the business operation that triggered it is not affected.
// The write survives cancellation of ctx.
func (u *auditUsecase) Record(ctx context.Context, userID uint, action, description string) {
	e := &entity.Entry{UserID: userID, Action: action, Description: description}
	if err := u.entries.Append(context.WithoutCancel(ctx), e); err != nil {
		metrics.AuditWriteFailuresTotal.Inc()
		u.log.Error().Err(err).
			Uint("user_id", userID).
			Str("action", action).
			Msg("failed to write audit entry")
	}
}

// Recent returns the newest entries. limit falls back to DefaultLimit when not
// positive and is capped at MaxLimit.
func (u *auditUsecase) Recent(ctx context.Context, limit int) ([]entity.EntryView, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	views, err := u.entries.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return views, nil
}
