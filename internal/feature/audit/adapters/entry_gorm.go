// Package adapters provides the gorm repository for audit entries.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"payments_backend/internal/feature/audit/domain/entity"
	"payments_backend/internal/feature/audit/usecase"
)

type entryGorm struct {
	db *gorm.DB
}

var _ usecase.EntryRepository = (*entryGorm)(nil)

// NewEntryRepository returns the gorm-backed audit store.
func NewEntryRepository(db *gorm.DB) *entryGorm {
	return &entryGorm{db: db}
}

// Append never joins a transaction carried by ctx.
func (r *entryGorm) Append(ctx context.Context, e *entity.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *entryGorm) Recent(ctx context.Context, limit int) ([]entity.EntryView, error) {
	views := []entity.EntryView{}
	err := r.db.WithContext(ctx).
		Table("audit_entries AS a").
		Select("a.id, a.user_id, COALESCE(u.name, '') AS user_name, a.action, a.description, a.created_at").
		Joins("LEFT JOIN users u ON u.id = a.user_id").
		Order("a.created_at DESC").
		Order("a.id DESC").
		Limit(limit).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}
