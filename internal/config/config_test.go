package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/finance?sslmode=disable")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("IDENTITY_PROVIDER_URL", "https://idp.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.HTTPAddress())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 5*time.Minute, cfg.DashboardCacheTTL)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("IDENTITY_PROVIDER_URL", "https://idp.example.com")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadMissingJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/finance")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("IDENTITY_PROVIDER_URL", "https://idp.example.com")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/finance")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("IDENTITY_PROVIDER_URL", "https://idp.example.com")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/finance")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("IDENTITY_PROVIDER_URL", "https://idp.example.com")
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("DASHBOARD_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.DashboardCacheTTL)
}

func TestLoadMissingIdentityProviderURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/finance")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("IDENTITY_PROVIDER_URL", "")

	_, err := Load()
	require.Error(t, err)
}
