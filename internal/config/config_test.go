package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "http://localhost:4040", cfg.LegacyAPIURL)
	assert.Equal(t, "0194ec39-4437-7c7f-b720-7cd7b2c8d7f4", cfg.LegacyAPIKey)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("LEGACY_API_URL", "https://legacy.example.com")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "https://legacy.example.com", cfg.LegacyAPIURL)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "localhost",
		DBPort: "5432",
		DBUser: "app",
		DBPass: "secret",
		DBName: "recruitment",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=app password=secret dbname=recruitment sslmode=disable",
		cfg.DSN())
}
