// Package config loads the settings the commands need from the environment.
// The msegat library itself never reads the environment; credentials are
// resolved here and passed into the client explicitly.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Kareem-3del/Msegat/pkg/msegat"
)

// Config holds all configuration for the commands.
type Config struct {
	// Gateway holds the Msegat credentials and endpoint.
	Gateway GatewayConfig

	// Server configures the local mock gateway.
	Server ServerConfig
}

// GatewayConfig holds Msegat account settings.
type GatewayConfig struct {
	Username string
	APIKey   string
	Sender   string
	BaseURL  string
}

// ServerConfig holds mock gateway server settings.
type ServerConfig struct {
	Port      string
	LogLevel  string // debug, info, warn, error
	LogFormat string // text or json
}

// Load loads configuration from environment variables, after sourcing a
// .env file when one exists (for local development).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Gateway: GatewayConfig{
			Username: getEnv("MSEGAT_USERNAME", ""),
			APIKey:   getEnv("MSEGAT_API_KEY", ""),
			Sender:   getEnv("MSEGAT_SENDER", msegat.DefaultSender),
			BaseURL:  getEnv("MSEGAT_API_URL", msegat.DefaultBaseURL),
		},
		Server: ServerConfig{
			Port:      getEnv("PORT", "8080"),
			LogLevel:  getEnv("LOG_LEVEL", "info"),
			LogFormat: getEnv("LOG_FORMAT", "text"),
		},
	}

	return config, nil
}

// Validate checks that the gateway credentials are present. Only the
// commands that talk to the real gateway need this; the mock gateway
// runs without credentials.
func (c *Config) Validate() error {
	if c.Gateway.Username == "" {
		return fmt.Errorf("MSEGAT_USERNAME is required")
	}

	if c.Gateway.APIKey == "" {
		return fmt.Errorf("MSEGAT_API_KEY is required")
	}

	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
