// Package config gathers every environment setting in one place and
// validates the result before the server starts.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	AppEnv string `validate:"required,oneof=development production"`
	Port   string `validate:"required,numeric"`

	// StoreBackend selects the storage implementation: "memory" keeps
	// everything in-process, "postgres" persists through sqlx.
	StoreBackend string `validate:"required,oneof=memory postgres"`

	// AuthMode "none" takes checkedInBy from request bodies; "session"
	// derives it from the logged-in user and enables the auth endpoints.
	AuthMode string `validate:"required,oneof=none session"`

	// SessionBackend selects where sessions live when AuthMode is
	// "session": in-process cache or Redis.
	SessionBackend string `validate:"required,oneof=memory redis"`

	// CheckInTokenSecret signs the short-lived QR check-in tokens.
	CheckInTokenSecret string `validate:"required"`

	DemoSeed bool

	PGHost     string `validate:"required_if=StoreBackend postgres"`
	PGPort     string `validate:"required_if=StoreBackend postgres"`
	PGUser     string `validate:"required_if=StoreBackend postgres"`
	PGPassword string
	PGDatabase string `validate:"required_if=StoreBackend postgres"`

	RedisHost     string
	RedisPort     string
	RedisPassword string
}

var validate = validator.New()

// Load reads configuration from the environment, applying development
// defaults, and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:             envOr("APP_ENV", "development"),
		Port:               envOr("PORT", "8080"),
		StoreBackend:       envOr("STORE_BACKEND", "memory"),
		AuthMode:           envOr("AUTH_MODE", "none"),
		SessionBackend:     envOr("SESSION_BACKEND", "memory"),
		CheckInTokenSecret: envOr("CHECKIN_TOKEN_SECRET", "dev-checkin-secret"),
		DemoSeed:           os.Getenv("DEMO_SEED") == "true",
		PGHost:             os.Getenv("PG_HOST"),
		PGPort:             envOr("PG_PORT", "5432"),
		PGUser:             os.Getenv("PG_USER"),
		PGPassword:         os.Getenv("PG_PASSWORD"),
		PGDatabase:         os.Getenv("PG_DB"),
		RedisHost:          envOr("REDIS_HOST", "localhost"),
		RedisPort:          envOr("REDIS_PORT", "6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// PostgresDSN builds the connection string shared by sqlx and the GORM
// migration path.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
