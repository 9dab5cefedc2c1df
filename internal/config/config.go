package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/bizstack/backoffice/pkg/database"
)

// Config holds the server configuration, loaded from the environment
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
	HTTPPort    string

	Database database.Config

	JaegerEndpoint string
	KafkaBrokers   []string
	RedisAddr      string

	// AllowBackorder lets order decrements drive stock below zero.
	// Off by default: over-sells are rejected.
	AllowBackorder bool
}

// Load reads configuration from the environment, honoring a .env file if present
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServiceName: getEnv("SERVICE_NAME", "backoffice"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "backoffice"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		AllowBackorder: getEnv("STOCK_ALLOW_BACKORDER", "false") == "true",
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	return cfg
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
