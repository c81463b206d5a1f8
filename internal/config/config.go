package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime settings, populated from environment variables.
type Config struct {
	Port     string `env:"PORT, default=3000"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	DBHost string `env:"DB_HOST, default=localhost"`
	DBPort string `env:"DB_PORT, default=5432"`
	DBUser string `env:"DB_USER, default=postgres"`
	DBPass string `env:"DB_PASS, default=postgres"`
	DBName string `env:"DB_NAME, default=recruitment"`

	RedisAddr string `env:"REDIS_ADDR, default=localhost:6379"`
	RedisPass string `env:"REDIS_PASS"`

	LegacyAPIURL string `env:"LEGACY_API_URL, default=http://localhost:4040"`
	LegacyAPIKey string `env:"LEGACY_API_KEY, default=0194ec39-4437-7c7f-b720-7cd7b2c8d7f4"`
}

// Load reads an optional .env file and resolves the configuration from the
// process environment.
func Load(ctx context.Context) (*Config, error) {
	// A missing .env file is fine, real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("processing environment config: %w", err)
	}
	return &cfg, nil
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
}
