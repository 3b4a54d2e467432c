// Package config loads application configuration from environment
// variables, with optional .env file support.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Redis  RedisConfig
	Output OutputConfig
}

// RedisConfig holds Redis-specific configuration for roster storage
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// OutputConfig holds sheet output configuration
type OutputConfig struct {
	Dir string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is honored when present.
func Load() (*Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	return &Config{
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("SCOX_REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("SCOX_REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("SCOX_REDIS_DB", 0),
		},
		Output: OutputConfig{
			Dir: getEnvOrDefault("SCOX_OUTPUT_DIR", "."),
		},
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
