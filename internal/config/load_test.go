package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		// Restore original environment
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// baseEnv clears every variable Load reads so tests don't see the developer's shell.
func baseEnv(overrides map[string]string) map[string]string {
	env := map[string]string{
		"DAYBE_SERVER_PORT":             "",
		"DAYBE_SERVER_LOG_LEVEL":        "",
		"DAYBE_LLM_GEMINI_API_KEY":      "",
		"DAYBE_LLM_TEXT_MODEL":          "",
		"DAYBE_LLM_IMAGE_MODEL":         "",
		"DAYBE_SPEECH_ENABLED":          "",
		"DAYBE_SPEECH_LANG":             "",
		"DAYBE_SPEECH_RATE":             "",
		"DAYBE_LLM_IMAGE_PROMPT_PATH":   "",
		"DAYBE_SESSIONS_IDLE_TTL":       "",
		"DAYBE_SESSIONS_SWEEP_INTERVAL": "",
		"GEMINI_API_KEY":                "",
		"API_KEY":                       "",
	}
	for k, v := range overrides {
		env[k] = v
	}
	return env
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when only the API key is provided.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, baseEnv(map[string]string{
		"DAYBE_LLM_GEMINI_API_KEY": "test-api-key",
	}))
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.TextModel)
	assert.Equal(t, "gemini-2.5-flash-image", cfg.LLM.ImageModel)
	assert.Empty(t, cfg.LLM.OptionsPromptPath)
	assert.True(t, cfg.Speech.Enabled)
	assert.Equal(t, "vi-VN", cfg.Speech.Lang)
	assert.InDelta(t, 0.8, cfg.Speech.Rate, 0.0001)
	assert.Equal(t, 30*time.Minute, cfg.Sessions.IdleTTL)
	assert.Equal(t, time.Minute, cfg.Sessions.SweepInterval)
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, baseEnv(map[string]string{
		"DAYBE_SERVER_PORT":        "9090",
		"DAYBE_SERVER_LOG_LEVEL":   "debug",
		"DAYBE_LLM_GEMINI_API_KEY": "test-api-key",
		"DAYBE_LLM_TEXT_MODEL":     "gemini-custom",
		"DAYBE_SPEECH_ENABLED":     "false",
		"DAYBE_SESSIONS_IDLE_TTL":  "2h",
	}))
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Log level should be loaded from environment variables")
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey, "Gemini API key should be loaded from environment variables")
	assert.Equal(t, "gemini-custom", cfg.LLM.TextModel)
	assert.False(t, cfg.Speech.Enabled)
	assert.Equal(t, 2*time.Hour, cfg.Sessions.IdleTTL)
}

// TestLoadAPIKeyAliases verifies that the API key is also read from the plain
// variable names used by Google's tooling.
func TestLoadAPIKeyAliases(t *testing.T) {
	for _, name := range []string{"GEMINI_API_KEY", "API_KEY"} {
		t.Run(name, func(t *testing.T) {
			cleanup := setupEnv(t, baseEnv(map[string]string{name: "alias-key"}))
			defer cleanup()

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, "alias-key", cfg.LLM.GeminiAPIKey)
		})
	}
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Missing API key",
			envVars: map[string]string{
				"DAYBE_SERVER_PORT": "9090",
			},
		},
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"DAYBE_SERVER_PORT":        "999999",
				"DAYBE_LLM_GEMINI_API_KEY": "test-api-key",
			},
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"DAYBE_SERVER_LOG_LEVEL":   "invalid-level",
				"DAYBE_LLM_GEMINI_API_KEY": "test-api-key",
			},
		},
		{
			name: "Invalid speech rate",
			envVars: map[string]string{
				"DAYBE_SPEECH_RATE":        "5",
				"DAYBE_LLM_GEMINI_API_KEY": "test-api-key",
			},
		},
		{
			name: "Session idle TTL too short",
			envVars: map[string]string{
				"DAYBE_SESSIONS_IDLE_TTL":  "10s",
				"DAYBE_LLM_GEMINI_API_KEY": "test-api-key",
			},
		},
		{
			name: "Missing prompt template file",
			envVars: map[string]string{
				"DAYBE_LLM_IMAGE_PROMPT_PATH": "/does/not/exist.tmpl",
				"DAYBE_LLM_GEMINI_API_KEY":    "test-api-key",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, baseEnv(tc.envVars))
			defer cleanup()

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed", "Error message should contain expected substring")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
