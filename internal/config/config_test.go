package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Starter API", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "starter-mcp", cfg.MCP.ServerName)
	assert.Equal(t, "stdio", cfg.MCP.Transport)
	assert.True(t, cfg.Seed.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_NAME", "Custom API")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SEED_DATA", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Custom API", cfg.App.Name)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.False(t, cfg.Seed.Enabled)
}

func TestLoadRejectsNonNumericPort(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnsupportedTransport(t *testing.T) {
	t.Setenv("MCP_TRANSPORT", "sse")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetEnvBoolFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SEED_DATA", "definitely")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Seed.Enabled)
}
