// Package config loads process configuration from the environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// devJWTSecret is only accepted outside production.
const devJWTSecret = "dev-only-secret-change-me"

// Config is the process configuration read from the environment.
type Config struct {
	Port        string   `env:"PORT, default=5000"`
	Env         string   `env:"APP_ENV, default=development"`
	Timezone    string   `env:"TIMEZONE, default=UTC"`
	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`
	StaticDir   string   `env:"STATIC_DIR"`

	Log   LogConfig
	Auth  AuthConfig
	DB    DBConfig
	Admin AdminConfig
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL, default=info"`
	Pretty bool   `env:"LOG_PRETTY, default=false"`
}

// AuthConfig holds the token signing settings.
type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=8h"`
}

// DBConfig selects and reaches the relational store.
type DBConfig struct {
	Driver         string        `env:"DB_DRIVER, default=sqlite"`
	URL            string        `env:"DATABASE_URL"`
	SQLitePath     string        `env:"SQLITE_PATH, default=payments.db"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT, default=60s"`
	RunMigrations  bool          `env:"RUN_MIGRATIONS, default=true"`
}

// AdminConfig is the account created when the store holds no administrator.
type AdminConfig struct {
	Name     string `env:"ADMIN_NAME, default=Administrador"`
	Email    string `env:"ADMIN_EMAIL, default=admin@sistema.com"`
	Password string `env:"ADMIN_PASSWORD, default=admin123"`
}

// IsProduction reports whether the process runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// UsingDevSecret reports whether the development JWT secret was substituted.
func (c *Config) UsingDevSecret() bool {
	return c.Auth.JWTSecret == devJWTSecret
}

// Load reads a .env file when present, then the process environment.
func Load(ctx context.Context) (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through the given lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		if c.IsProduction() {
			return errors.New("config: JWT_SECRET is required in production")
		}
		c.Auth.JWTSecret = devJWTSecret
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("config: TOKEN_TTL must be positive")
	}
	switch c.DB.Driver {
	case "sqlite":
	case "postgres":
		if c.DB.URL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
