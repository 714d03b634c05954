package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Database
	DatabaseURL string

	// Dataset seeding
	DatasetFile string // Optional YAML dump seeded into the table at startup

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com"

	// Rate limiting
	RateLimitMax int    // Requests per minute per IP
	RedisURL     string // Optional backing store for the rate limiter
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		ServerAddr:   getEnv("SERVER_ADDR", ":8000"),
		DatabaseURL:  getEnv("DATABASE_URL", "postgres://localhost:5432/dailydewey?sslmode=disable"),
		DatasetFile:  getEnv("DATASET_FILE", "classifications.yaml"),
		CORSOrigins:  getEnv("CORS_ORIGINS", "*"),
		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),
		RedisURL:     getEnv("REDIS_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
