// Package handler serves the report endpoints.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"payments_backend/internal/api"
	"payments_backend/internal/feature/reports/domain/entity"
	"payments_backend/internal/feature/reports/transport/http/dto"
)

// ReportUsecase is the read-only reports the handler serves.
type ReportUsecase interface {
	Dashboard(ctx context.Context) (entity.DashboardStats, error)
	Delinquents(ctx context.Context) ([]entity.Delinquent, error)
	MonthlyPayers(ctx context.Context) ([]entity.MonthlyPayer, error)
}

// ReportHandler serves the dashboard and report routes.
type ReportHandler struct {
	reports ReportUsecase
}

// NewReportHandler returns a ReportHandler backed by reports.
func NewReportHandler(reports ReportUsecase) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Dashboard handles GET /api/dashboard.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	s, err := h.reports.Dashboard(c.Request.Context())
	if err != nil {
		api.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDashboardResponse(s))
}

// Delinquents handles GET /api/delinquents.
func (h *ReportHandler) Delinquents(c *gin.Context) {
	ds, err := h.reports.Delinquents(c.Request.Context())
	if err != nil {
		api.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDelinquentResponses(ds))
}

// MonthlyPayers handles GET /api/payments/current-month.
func (h *ReportHandler) MonthlyPayers(c *gin.Context) {
	ps, err := h.reports.MonthlyPayers(c.Request.Context())
	if err != nil {
		api.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMonthlyPayerResponses(ps))
}
