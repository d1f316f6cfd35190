// Package router mounts every HTTP route of the service.
package router

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"payments_backend/internal/api"
	audithandler "payments_backend/internal/feature/audit/transport/handler"
	authhandler "payments_backend/internal/feature/auth/transport/handler"
	customerhandler "payments_backend/internal/feature/customers/transport/handler"
	paymenthandler "payments_backend/internal/feature/payments/transport/handler"
	reporthandler "payments_backend/internal/feature/reports/transport/handler"
	"payments_backend/internal/platform/http/handler"
	"payments_backend/internal/platform/http/middleware"
	jwtmw "payments_backend/internal/platform/jwt"
	"payments_backend/internal/platform/metrics"
	"payments_backend/internal/shared/apperr"
)

const readyTimeout = 2 * time.Second

// Deps holds everything the router mounts.
type Deps struct {
	Log         zerolog.Logger
	Gate        *jwtmw.Gate
	Pinger      handler.Pinger
	CORSOrigins []string
	// StaticDir, when set, is served for every path outside /api.
	StaticDir string

	Auth      *authhandler.AuthHandler
	Users     *authhandler.UserHandler
	Audit     *audithandler.AuditHandler
	Customers *customerhandler.CustomerHandler
	Payments  *paymenthandler.PaymentHandler
	Reports   *reporthandler.ReportHandler
}

// NewRouter mounts the public, authenticated and admin-only routes.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(d.Log), middleware.Recovery(), metrics.Middleware(), corsMiddleware(d.CORSOrigins))

	// public
	r.GET("/metrics", metrics.Handler())
	pub := r.Group("/api")
	{
		pub.GET("/status", handler.Status)
		pub.HEAD("/status", handler.Status)
		pub.GET("/ready", handler.Ready(d.Pinger, readyTimeout))
		pub.POST("/auth/login", d.Auth.Login)
	}

	authed := r.Group("/api", d.Gate.Authenticated())
	{
		authed.GET("/auth/verify", d.Auth.Verify)
		authed.GET("/auth/verificar", d.Auth.Verify)

		for _, base := range []string{"/customers", "/clientes"} {
			g := authed.Group(base)
			g.GET("", d.Customers.List)
			g.POST("", d.Customers.Create)
			g.GET("/:id", d.Customers.Get)
			g.PUT("/:id", d.Customers.Update)
			g.DELETE("/:id", d.Customers.Delete)
		}

		payments := authed.Group("/payments")
		payments.GET("", d.Payments.List)
		payments.POST("", d.Payments.Create)
		payments.GET("/current-month", d.Reports.MonthlyPayers)
		payments.POST("/:id/pay", d.Payments.Pay)
		payments.POST("/:id/cancel", d.Payments.Cancel)
		payments.DELETE("/:id", d.Payments.Delete)

		pagamentos := authed.Group("/pagamentos")
		pagamentos.GET("", d.Payments.List)
		pagamentos.POST("", d.Payments.Create)
		pagamentos.GET("/mes-atual", d.Reports.MonthlyPayers)
		pagamentos.POST("/:id/pagar", d.Payments.Pay)
		pagamentos.POST("/:id/cancelar", d.Payments.Cancel)
		pagamentos.DELETE("/:id", d.Payments.Delete)

		authed.GET("/history/:customer_id", d.Payments.History)
		authed.GET("/historico/:customer_id", d.Payments.History)

		authed.GET("/dashboard", d.Reports.Dashboard)
		authed.GET("/delinquents", d.Reports.Delinquents)
		authed.GET("/inadimplentes", d.Reports.Delinquents)
	}

	admin := r.Group("/api", d.Gate.AdminOnly())
	{
		for _, base := range []string{"/users", "/usuarios"} {
			g := admin.Group(base)
			g.GET("", d.Users.List)
			g.POST("", d.Users.Create)
			g.GET("/:id", d.Users.Get)
			g.PUT("/:id", d.Users.Update)
			g.DELETE("/:id", d.Users.Delete)
		}
		admin.GET("/history", d.Audit.List)
		admin.GET("/historico", d.Audit.List)
	}

	r.NoRoute(notFound(d.StaticDir))
	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Authorization", "Content-Type", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// notFound answers unknown /api paths with the JSON envelope. Other paths are
// served from staticDir, falling back to its index.html.
func notFound(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if staticDir == "" || p == "/api" || strings.HasPrefix(p, "/api/") {
			api.Fail(c, apperr.NotFound("route not found"))
			return
		}
		file := filepath.Join(staticDir, filepath.FromSlash(path.Clean("/"+p)))
		if fileExists(file) {
			c.File(file)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}

func fileExists(name string) bool {
	st, err := os.Stat(name)
	return err == nil && !st.IsDir()
}
