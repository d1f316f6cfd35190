// Package di wires repositories, usecases and handlers together.
package di

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"payments_backend/internal/app/router"
	auditadapters "payments_backend/internal/feature/audit/adapters"
	auditentity "payments_backend/internal/feature/audit/domain/entity"
	audithandler "payments_backend/internal/feature/audit/transport/handler"
	auditusecase "payments_backend/internal/feature/audit/usecase"
	authadapters "payments_backend/internal/feature/auth/adapters"
	authentity "payments_backend/internal/feature/auth/domain/entity"
	authhandler "payments_backend/internal/feature/auth/transport/handler"
	authusecase "payments_backend/internal/feature/auth/usecase"
	customeradapters "payments_backend/internal/feature/customers/adapters"
	customerentity "payments_backend/internal/feature/customers/domain/entity"
	customerhandler "payments_backend/internal/feature/customers/transport/handler"
	customerusecase "payments_backend/internal/feature/customers/usecase"
	paymentadapters "payments_backend/internal/feature/payments/adapters"
	paymententity "payments_backend/internal/feature/payments/domain/entity"
	paymenthandler "payments_backend/internal/feature/payments/transport/handler"
	paymentusecase "payments_backend/internal/feature/payments/usecase"
	reportadapters "payments_backend/internal/feature/reports/adapters"
	reporthandler "payments_backend/internal/feature/reports/transport/handler"
	reportusecase "payments_backend/internal/feature/reports/usecase"
	"payments_backend/internal/platform/config"
	"payments_backend/internal/platform/db"
	jwtmw "payments_backend/internal/platform/jwt"
	"payments_backend/internal/shared/dates"
)

// Models lists every table owned by the service.
func Models() []any {
	return []any{&authentity.User{}, &customerentity.Customer{}, &paymententity.Payment{}, &auditentity.Entry{}}
}

// Bootstrap migrates the schema when enabled and makes sure an administrator exists.
func Bootstrap(ctx context.Context, gdb *gorm.DB, cfg *config.Config, log zerolog.Logger) error {
	if cfg.DB.RunMigrations {
		if err := db.Migrate(gdb, Models()...); err != nil {
			return err
		}
	}

	seed := authusecase.AdminSeed{Name: cfg.Admin.Name, Email: cfg.Admin.Email, Password: cfg.Admin.Password}
	if _, err := authusecase.EnsureAdmin(ctx, authadapters.NewUserRepository(gdb), seed, log); err != nil {
		return fmt.Errorf("failed to seed administrator: %w", err)
	}
	return nil
}

// NewRouter builds the HTTP router over gdb.
func NewRouter(gdb *gorm.DB, cfg *config.Config, log zerolog.Logger) (*gin.Engine, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	clock := dates.NewClock(nil, loc)
	tx := db.NewTransactor(gdb)
	tokens := jwtmw.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Repository
	userRepo := authadapters.NewUserRepository(gdb)
	entryRepo := auditadapters.NewEntryRepository(gdb)
	customerRepo := customeradapters.NewCustomerRepository(gdb)
	paymentRepo := paymentadapters.NewPaymentRepository(gdb)
	reportRepo := reportadapters.NewReportRepository(gdb)

	// Usecase
	auditUC := auditusecase.NewAuditUsecase(entryRepo, log)
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, auditUC)
	userUC := authusecase.NewUserUsecase(userRepo, tx, auditUC)
	customerUC := customerusecase.NewCustomerUsecase(customerRepo, tx, auditUC)
	paymentUC := paymentusecase.NewPaymentUsecase(paymentRepo, paymentRepo, tx, auditUC, clock)
	reportUC := reportusecase.NewReportUsecase(reportRepo, clock)

	return router.NewRouter(router.Deps{
		Log:         log,
		Gate:        jwtmw.NewGate(tokens),
		Pinger:      sqlDB,
		CORSOrigins: cfg.CORSOrigins,
		StaticDir:   cfg.StaticDir,

		Auth:      authhandler.NewAuthHandler(authUC),
		Users:     authhandler.NewUserHandler(userUC),
		Audit:     audithandler.NewAuditHandler(auditUC),
		Customers: customerhandler.NewCustomerHandler(customerUC, reportUC),
		Payments:  paymenthandler.NewPaymentHandler(paymentUC),
		Reports:   reporthandler.NewReportHandler(reportUC),
	}), nil
}
