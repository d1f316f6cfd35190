package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments_backend/internal/feature/auth/domain/entity"
	"payments_backend/internal/feature/auth/usecase"
	jwtmw "payments_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthUsecase is a mock implementation of AuthUsecase.
type mockAuthUsecase struct {
	LoginFunc func(ctx context.Context, email, password string) (*usecase.LoginResult, error)
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, errors.New("login failed")
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		requestBody    gin.H
		loginFunc      func(ctx context.Context, email, password string) (*usecase.LoginResult, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "success",
			requestBody: gin.H{"email": "admin@sistema.com", "password": "admin123"},
			loginFunc: func(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
				return &usecase.LoginResult{
					Token: "signed.token.value",
					User:  &entity.User{ID: 1, Name: "Administrador", Email: email, Role: "admin"},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"token":"signed.token.value","user":{"id":1,"name":"Administrador","email":"admin@sistema.com","role":"admin"}}`,
		},
		{
			name:           "missing password",
			requestBody:    gin.H{"email": "admin@sistema.com"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"password is required"}`,
		},
		{
			name:           "invalid email",
			requestBody:    gin.H{"email": "admin", "password": "x"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"email must be a valid email"}`,
		},
		{
			name:        "bad credentials",
			requestBody: gin.H{"email": "admin@sistema.com", "password": "wrong"},
			loginFunc: func(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
				return nil, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success":false,"error":"invalid email or password"}`,
		},
		{
			name:        "store failure",
			requestBody: gin.H{"email": "admin@sistema.com", "password": "admin123"},
			loginFunc: func(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
				return nil, errors.New("connection reset")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			called := false
			mockUC := &mockAuthUsecase{LoginFunc: func(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
				called = true
				return tt.loginFunc(ctx, email, password)
			}}
			h := NewAuthHandler(mockUC)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, tt.requestBody))
			c.Request.Header.Set("Content-Type", "application/json")

			h.Login(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, tt.loginFunc != nil, called)
		})
	}
}

func TestAuthHandler_Verify(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	c.Request = req.WithContext(jwtmw.WithIdentity(req.Context(), jwtmw.Identity{UserID: 4, Email: "op@example.com", Role: "operator"}))

	NewAuthHandler(&mockAuthUsecase{}).Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"user":{"id":4,"email":"op@example.com","role":"operator"}}`, w.Body.String())
}
