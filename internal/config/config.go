package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full env surface of the storefront. A single backend base
// URL selects which environment the catalog and order clients talk to.
type Config struct {
	HTTPPort        string
	BackendBaseURL  string
	RedisAddr       string // empty disables the product cache
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		BackendBaseURL:  getEnv("BACKEND_BASE_URL", "http://localhost:8000/api/v1"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
