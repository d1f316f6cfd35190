// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"payments_backend/internal/api"
	"payments_backend/internal/feature/auth/transport/http/dto"
	"payments_backend/internal/feature/auth/usecase"
	jwtmw "payments_backend/internal/platform/jwt"
)

// AuthUsecase authenticates users.
// Interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*usecase.LoginResult, error)
}

// AuthHandler serves login and token verification.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler returns an AuthHandler backed by auth.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /api/auth/login.
//   - 400 on a malformed body
//   - 401 on bad credentials (the reason is never more specific)
//   - 200 with token and user summary on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, err)
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		api.Fail(c, err)
		return
	}

	zerolog.Ctx(c.Request.Context()).Info().Uint("user_id", res.User.ID).Str("client_ip", c.ClientIP()).Msg("user login successful")
	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Token:   res.Token,
		User:    dto.NewSessionUser(res.User),
	})
}

// Verify handles GET /api/auth/verify. The gate has already validated the token.
func (h *AuthHandler) Verify(c *gin.Context) {
	id, _ := jwtmw.IdentityFrom(c.Request.Context())
	c.JSON(http.StatusOK, dto.VerifyResponse{Success: true, User: id})
}
