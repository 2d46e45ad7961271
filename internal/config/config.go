package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/docuglot/docuglot/internal/constants"
)

type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Addr            string
	ProviderTimeout time.Duration
}

// GatewayConfig holds the server-side credential for the system default
// translation backend, used when a request carries no custom provider info.
type GatewayConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Addr:            getEnv("SERVER_ADDR", ":8080"),
			ProviderTimeout: time.Duration(getEnvInt("PROVIDER_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		Gateway: GatewayConfig{
			APIKey:  getEnv("GATEWAY_API_KEY", ""),
			BaseURL: getEnv("GATEWAY_BASE_URL", constants.Gateway.DefaultBaseURL),
			Model:   getEnv("GATEWAY_MODEL", constants.Gateway.DefaultModel),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("SERVER_ADDR is required")
	}
	if c.Server.ProviderTimeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT_SECONDS must be positive")
	}
	if c.Gateway.BaseURL == "" {
		return fmt.Errorf("GATEWAY_BASE_URL is required")
	}
	if c.Gateway.Model == "" {
		return fmt.Errorf("GATEWAY_MODEL is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
