// Package handler serves the customers endpoints.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"payments_backend/internal/api"
	"payments_backend/internal/feature/customers/domain/entity"
	"payments_backend/internal/feature/customers/transport/http/dto"
	"payments_backend/internal/feature/customers/usecase"
	reportentity "payments_backend/internal/feature/reports/domain/entity"
	jwtmw "payments_backend/internal/platform/jwt"
)

// CustomerUsecase is the customer operations the handler needs.
type CustomerUsecase interface {
	List(ctx context.Context, search string) ([]entity.Customer, error)
	Get(ctx context.Context, id uint) (*entity.Customer, error)
	Create(ctx context.Context, actorID uint, in usecase.CustomerInput) (*entity.Customer, error)
	Update(ctx context.Context, actorID, id uint, in usecase.CustomerInput) (*entity.Customer, error)
	Deactivate(ctx context.Context, actorID, id uint) error
}

// StatsProvider computes the payment statistics shown on the customer detail.
type StatsProvider interface {
	CustomerStats(ctx context.Context, customerID uint) (reportentity.CustomerStats, error)
}

// CustomerHandler serves the customer routes.
type CustomerHandler struct {
	customers CustomerUsecase
	stats     StatsProvider
}

// NewCustomerHandler returns a CustomerHandler. stats fills the detail view.
func NewCustomerHandler(customers CustomerUsecase, stats StatsProvider) *CustomerHandler {
	return &CustomerHandler{customers: customers, stats: stats}
}

// List handles GET /api/customers?search=.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context(), api.QueryAlias(c, "search", "busca"))
	if err != nil {
		api.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerResponses(customers))
}

// Get handles GET /api/customers/:id and includes the payment stats.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	customer, err := h.customers.Get(ctx, id)
	if err != nil {
		api.Fail(c, err)
		return
	}
	stats, err := h.stats.CustomerStats(ctx, id)
	if err != nil {
		api.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerDetailResponse(customer, stats))
}

// Create handles POST /api/customers and answers 201 with the new id.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, err)
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), jwtmw.ActorID(c), input(req))
	if err != nil {
		api.Fail(c, err)
		return
	}
	api.Created(c, customer.ID)
}

// Update handles PUT /api/customers/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, err)
		return
	}

	if _, err := h.customers.Update(c.Request.Context(), jwtmw.ActorID(c), id, input(req)); err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, "customer updated")
}

// Delete handles DELETE /api/customers/:id by deactivating the customer.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.customers.Deactivate(c.Request.Context(), jwtmw.ActorID(c), id); err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, "customer deactivated")
}

func input(req dto.CustomerRequest) usecase.CustomerInput {
	return usecase.CustomerInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		NationalID: req.NationalID,
		Address:    req.Address,
		Notes:      req.Notes,
	}
}
