// Package db opens the relational store and provides the transaction helper
// every repository goes through.
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	retryInterval = 3 * time.Second
)

// Config describes how to reach the store.
type Config struct {
	Driver         string
	URL            string
	SQLitePath     string
	ConnectTimeout time.Duration
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN returns the DSN for the configured driver.
// sqlite gets foreign keys and a busy timeout; postgres URLs are passed through
// with the legacy postgres:// scheme normalised.
func BuildDSN(cfg Config) string {
	switch cfg.Driver {
	case DriverPostgres:
		if rest, ok := strings.CutPrefix(cfg.URL, "postgres://"); ok {
			return "postgresql://" + rest
		}
		return cfg.URL
	default:
		sep := "?"
		if strings.Contains(cfg.SQLitePath, "?") {
			sep = "&"
		}
		return cfg.SQLitePath + sep + "_foreign_keys=on&_busy_timeout=5000"
	}
}

// NewOpener returns an Opener for driver.
func NewOpener(driver string, gcfg *gorm.Config) (Opener, error) {
	switch driver {
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), gcfg)
		}, nil
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), gcfg)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}

// GormConfig is the gorm configuration shared by the server and tests.
// TranslateError makes unique violations surface as gorm.ErrDuplicatedKey.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
}

// Open connects to the store, retrying until cfg.ConnectTimeout elapses.
func Open(cfg Config, log zerolog.Logger) (*gorm.DB, error) {
	opener, err := NewOpener(cfg.Driver, GormConfig())
	if err != nil {
		return nil, err
	}

	db, err := connectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, retryInterval, opener, log)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.Driver == DriverSQLite {
		// sqlite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return db, nil
}

// connectWithRetry calls opener until it succeeds or timeout elapses.
func connectWithRetry(dsn string, timeout, interval time.Duration, opener Opener, log zerolog.Logger) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		log.Warn().Err(err).Dur("retry_in", interval).Msg("db connect failed, retrying")
		time.Sleep(interval)
	}
}

// Migrate creates or updates the tables for models.
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

type txKey struct{}

// Transactor scopes a unit of work to one transaction.
type Transactor struct {
	db *gorm.DB
}

// NewTransactor returns a Transactor over db.
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTx runs fn inside a transaction carried by the context passed to fn.
// The transaction commits when fn returns nil and rolls back otherwise.
// A nested call becomes a savepoint of the outer transaction.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return Conn(ctx, t.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// Conn returns the transaction bound to ctx, or fallback when there is none.
// Repositories call it on every operation so they join an open unit of work.
func Conn(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return fallback.WithContext(ctx)
}

// IsNotFound reports whether err is gorm's record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
