package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	RedisDB     int

	// JWTSecret verifies bearer tokens issued by the identity provider.
	JWTSecret string

	// IdentityProviderURL is the base URL of the identity provider's REST
	// API, used to fetch user profiles on first sight. IdentityProviderKey
	// authenticates those calls.
	IdentityProviderURL string
	IdentityProviderKey string

	// DashboardCacheTTL bounds staleness of the dashboard read model.
	DashboardCacheTTL time.Duration
}

// Load reads configuration from the environment and performs minimal
// validation. Defaults suit local development.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		JWTSecret:           strings.TrimSpace(os.Getenv("JWT_SECRET")),
		IdentityProviderURL: getEnv("IDENTITY_PROVIDER_URL", ""),
		IdentityProviderKey: strings.TrimSpace(os.Getenv("IDENTITY_PROVIDER_KEY")),
		DashboardCacheTTL:   getEnvDuration("DASHBOARD_CACHE_TTL", 5*time.Minute),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	// Without the provider URL, first-sight provisioning via /v1/me can
	// only fail at request time.
	if cfg.IdentityProviderURL == "" {
		return nil, errors.New("IDENTITY_PROVIDER_URL is required")
	}
	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid port %q", cfg.Port)
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c *Config) HTTPAddress() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
