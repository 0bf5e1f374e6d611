// Package config provides configuration loading and validation for the
// server and tools.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds the process-level configuration read from environment
// variables.
type ServerConfig struct {
	Port        int
	DatabaseURL string
	Env         string // "development" exposes storage error detail in responses
}

// NewServerConfig creates a server configuration from environment variables.
// It reads PORT (default: 5000), DATABASE_URL (required) and APP_ENV
// (default: "production").
func NewServerConfig() (*ServerConfig, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "5000" // default
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", port)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "production"
	}

	return &ServerConfig{
		Port:        port,
		DatabaseURL: databaseURL,
		Env:         env,
	}, nil
}

// IsDevelopment reports whether the process runs in development mode.
func (c *ServerConfig) IsDevelopment() bool {
	return c.Env == "development"
}
