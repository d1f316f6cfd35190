// Package handler provides the HTTP handler for the audit log.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"payments_backend/internal/api"
	"payments_backend/internal/feature/audit/domain/entity"
	"payments_backend/internal/feature/audit/transport/http/dto"
	"payments_backend/internal/shared/apperr"
)

// AuditReader lists recent audit entries.
type AuditReader interface {
	Recent(ctx context.Context, limit int) ([]entity.EntryView, error)
}

// AuditHandler serves the audit history to administrators.
type AuditHandler struct {
	audit AuditReader
}

// NewAuditHandler returns an AuditHandler reading from audit.
func NewAuditHandler(audit AuditReader) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// List handles GET /api/history?limit=N. The legacy "limite" parameter is
// accepted too.
func (h *AuditHandler) List(c *gin.Context) {
	raw := api.QueryAlias(c, "limit", "limite")

	limit := 0
	if raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			api.Fail(c, apperr.Validation("limit must be an integer"))
			return
		}
		limit = n
	}

	views, err := h.audit.Recent(c.Request.Context(), limit)
	if err != nil {
		api.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewEntryResponses(views))
}
