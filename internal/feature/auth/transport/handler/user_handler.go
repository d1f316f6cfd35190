package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"payments_backend/internal/api"
	"payments_backend/internal/feature/auth/domain/entity"
	"payments_backend/internal/feature/auth/transport/http/dto"
	"payments_backend/internal/feature/auth/usecase"
	jwtmw "payments_backend/internal/platform/jwt"
)

// UserUsecase manages user accounts.
type UserUsecase interface {
	List(ctx context.Context) ([]entity.User, error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	Create(ctx context.Context, actorID uint, in usecase.CreateUserInput) (*entity.User, error)
	Update(ctx context.Context, actorID, id uint, in usecase.UpdateUserInput) (*entity.User, error)
	Deactivate(ctx context.Context, actorID, id uint) error
}

// UserHandler serves /api/users. Every route is admin-only.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler returns a UserHandler backed by users.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		api.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		api.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Create handles POST /api/users.
// It answers 400 on invalid input or a taken email and 201 with the new id.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, err)
		return
	}

	user, err := h.users.Create(c.Request.Context(), jwtmw.ActorID(c), usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		api.Fail(c, err)
		return
	}
	api.Created(c, user.ID)
}

// Update handles PUT /api/users/:id. The password is changed only when sent.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, err)
		return
	}

	_, err := h.users.Update(c.Request.Context(), jwtmw.ActorID(c), id, usecase.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, "user updated")
}

// Delete handles DELETE /api/users/:id by deactivating the user.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := api.PathID(c, "id")
	if !ok {
		return
	}
	if err := h.users.Deactivate(c.Request.Context(), jwtmw.ActorID(c), id); err != nil {
		api.Fail(c, err)
		return
	}
	api.OK(c, "user deactivated")
}
