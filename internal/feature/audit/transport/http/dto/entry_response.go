// Package dto defines the wire shapes of the audit endpoints.
package dto

import (
	"time"

	"payments_backend/internal/feature/audit/domain/entity"
)

// EntryResponse is one row of the audit history.
type EntryResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	UserName    string    `json:"user_name"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewEntryResponses(views []entity.EntryView) []EntryResponse {
	out := make([]EntryResponse, 0, len(views))
	for _, v := range views {
		out = append(out, EntryResponse{
			ID:          v.ID,
			UserID:      v.UserID,
			UserName:    v.UserName,
			Action:      v.Action,
			Description: v.Description,
			CreatedAt:   v.CreatedAt,
		})
	}
	return out
}
