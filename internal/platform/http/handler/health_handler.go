// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// StatusResponse is the liveness body. It never depends on the store.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Status handles GET/HEAD /api/status.
func Status(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, StatusResponse{Status: "online", Message: "API running"})
	}
}

// Pinger checks that the store answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Ready returns a readiness handler that pings the store within timeout.
func Ready(p Pinger, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		if err := p.PingContext(ctx); err != nil {
			zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("readiness check failed")
			c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable", Message: "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, StatusResponse{Status: "ready", Message: "database reachable"})
	}
}
