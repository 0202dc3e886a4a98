package config_test

import (
	"testing"

	"voyago/config"

	"github.com/stretchr/testify/require"
)

// TestLoadConfigDefaults checks the shipped defaults when nothing overrides
// them.
func TestLoadConfigDefaults(t *testing.T) {
	config.LoadConfig()

	require.Equal(t, "8080", config.AppConfig.AppPort)
	require.Equal(t, "development", config.AppConfig.Env)
	require.Equal(t, "memory", config.AppConfig.StoreBackend)
	require.Equal(t, "models/gemini-1.5-pro", config.AppConfig.GeminiModel)
	require.Equal(t, 20, config.AppConfig.AgentRequestLimit)
	require.Equal(t, 10, config.AppConfig.AgentToolCallLimit)
	require.False(t, config.IsProduction())
}

// TestLoadConfigEnvOverride checks environment variables win over defaults.
func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("ENV", "production")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("AGENT_TOOL_CALL_LIMIT", "4")

	config.LoadConfig()

	require.Equal(t, "9999", config.AppConfig.AppPort)
	require.Equal(t, "production", config.AppConfig.Env)
	require.True(t, config.IsProduction())
	require.Equal(t, "redis", config.AppConfig.StoreBackend)
	require.Equal(t, 4, config.AppConfig.AgentToolCallLimit)
}
