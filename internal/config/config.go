// Package config centralises configuration parsing for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config captures runtime configuration values.
type Config struct {
	Port         string
	DatabasePath string
	JWTSecret    string
	CookieSecure bool
	BcryptCost   int

	// TrustProxy makes rate limiting key on X-Forwarded-For instead of the
	// socket address. Only set it when a reverse proxy in front of the
	// server overwrites that header.
	TrustProxy bool

	// Admin bootstrap account, created idempotently at startup when both
	// values are set.
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// Load reads environment variables into Config, applying defaults for local
// dev. It returns an error for missing or out-of-range security settings
// rather than starting with a weak configuration.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "teachboard.db"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") != "false",
		TrustProxy:    os.Getenv("TRUST_PROXY") == "true",
		BcryptCost:    12,
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
	}

	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return cfg, fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if parsed < 4 || parsed > 14 {
			return cfg, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", parsed)
		}
		cfg.BcryptCost = parsed
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
