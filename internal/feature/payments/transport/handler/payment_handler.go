// Package handler serves the payments endpoints.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"payments_backend/internal/api"
	"payments_backend/internal/feature/payments/domain/entity"
	"payments_backend/internal/feature/payments/transport/http/dto"
	"payments_backend/internal/feature/payments/usecase"
	jwtmw "payments_backend/internal/platform/jwt"
	"payments_backend/internal/shared/apperr"
)

// PaymentUsecase is the payment operations the handler needs.
type PaymentUsecase interface {
	Create(ctx context.Context, actorID uint, in usecase.CreateInput) (*entity.Payment, error)
	List(ctx context.Context, in usecase.ListInput) ([]entity.PaymentView, error)
	Pay(ctx context.Context, actorID, id uint, method string) (*entity.Payment, error)
	Cancel(ctx context.Context, actorID, id uint) (*entity.Payment, error)
	Delete(ctx context.Context, actorID, id uint) error
	History(ctx context.Context, customerID uint) ([]entity.HistoryEntry, error)
}

// PaymentHandler serves the payment and history routes.
type PaymentHandler struct {
	payments PaymentUsecase
}

// NewPaymentHandler returns a PaymentHandler backed by payments.
func NewPaymentHandler(payments PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// List handles GET /api/payments with optional status, month and customer_id filters.
// A malformed customer_id answers 400.
func (h *PaymentHandler) List(c *gin.Context) {
	in := usecase.ListInput{
		Status: c.Query("status"),
		Month:  api.QueryAlias(c, "month", "mes"),
	}
	if raw := api.QueryAlias(c, "customer_id", "cliente_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			api.Fail(c, apperr.Validation("customer_id must be a positive integer"))
			return
		}
		in.CustomerID = uint(id)
	}

	views, err := h.payments.List(c.Request.Context(), in)
	if err != nil {
		api.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentListItems(views))
}

// Create handles POST /api/payments and answers 201 with the new id.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, err)
		return
	}

	p, err := h.payments.Create(c.Request.Context(), jwtmw.ActorID(c), usecase.CreateInput{
		CustomerID:  req.CustomerID,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Description: req.Description,
		Notes:       req.Notes,
	})
	if err != nil {
		api.Fail(c, err)
		return
	}
	api.Created(c, p.ID)
}

// Pay accepts an empty body, in which case the default method is recorded.
func (h *PaymentHandler) Pay(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	var req dto.PayRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			api.BadRequest(c, err)
			return
		}
	}

	if _, err := h.payments.Pay(c.Request.Context(), jwtmw.ActorID(c), id, req.Method); err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, "payment settled")
}

// Cancel handles POST /api/payments/:id/cancel.
func (h *PaymentHandler) Cancel(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.payments.Cancel(c.Request.Context(), jwtmw.ActorID(c), id); err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, "payment cancelled")
}

// Delete handles DELETE /api/payments/:id.
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.payments.Delete(c.Request.Context(), jwtmw.ActorID(c), id); err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, "payment deleted")
}

// History handles GET /api/history/:customer_id.
func (h *PaymentHandler) History(c *gin.Context) {
	customerID, ok := api.PathID(c, "customer_id")
	if !ok {
		return
	}
	entries, err := h.payments.History(c.Request.Context(), customerID)
	if err != nil {
		api.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewHistoryItems(entries))
}
