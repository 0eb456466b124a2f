package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration, populated from
// environment variables with development-friendly defaults.
type Config struct {
	App  AppConfig
	MCP  MCPConfig
	Seed SeedConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, production
	Port        string
	Version     string
}

type MCPConfig struct {
	// ServerName is the name the MCP server announces to clients.
	ServerName string
	// Transport selects how the MCP server talks to its client. Only stdio
	// is supported; the value exists so deployments can fail fast on an
	// unsupported setting instead of silently misbehaving.
	Transport string
}

type SeedConfig struct {
	// Enabled seeds the store with sample items and users at startup.
	Enabled bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Starter API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "0.1.0"),
		},
		MCP: MCPConfig{
			ServerName: getEnv("MCP_SERVER_NAME", "starter-mcp"),
			Transport:  getEnv("MCP_TRANSPORT", "stdio"),
		},
		Seed: SeedConfig{
			Enabled: getEnvBool("SEED_DATA", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the loaded configuration for unusable values.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.App.Port); err != nil {
		return fmt.Errorf("APP_PORT must be numeric, got %q", c.App.Port)
	}
	if c.MCP.Transport != "stdio" {
		return fmt.Errorf("unsupported MCP transport %q (only stdio is supported)", c.MCP.Transport)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
