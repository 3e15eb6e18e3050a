package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T) {
	t.Setenv("REDDIT_CLIENT_ID", "client_id")
	t.Setenv("REDDIT_CLIENT_SECRET", "client_secret")
	t.Setenv("REDDIT_USERNAME", "spez")
	t.Setenv("REDDIT_PASSWORD", "hunter2")
}

func TestLoad_Defaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "MCP:reddit-server:v1.0 (by /u/spez)", cfg.UserAgent)
	assert.Equal(t, 30, cfg.RequestTimeoutSeconds)
	assert.Equal(t, 60.0, cfg.RequestsPerMinute)
	assert.Equal(t, 10, cfg.RateBurst)
	assert.Equal(t, "@every 1h", cfg.MetricsLogSchedule)
	assert.Empty(t, cfg.SessionCheckSchedule)
}

func TestLoad_Overrides(t *testing.T) {
	setCredentials(t)
	t.Setenv("MCP_TRANSPORT", "SSE")
	t.Setenv("PORT", "9090")
	t.Setenv("REDDIT_USER_AGENT", "custom-agent/2.0")
	t.Setenv("METRICS_LOG_SCHEDULE", "")
	t.Setenv("DEBUG", "true")
	t.Setenv("SESSION_CHECK_SCHEDULE", "@every 30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, TransportSSE, cfg.Transport)
	assert.Equal(t, "http://localhost:9090", cfg.BaseURL)
	assert.Equal(t, "custom-agent/2.0", cfg.UserAgent)
	assert.Empty(t, cfg.MetricsLogSchedule)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "@every 30m", cfg.SessionCheckSchedule)
}

func TestLoad_MissingCredentials(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		message string
	}{
		{name: "Missing client ID", unset: "REDDIT_CLIENT_ID", message: "REDDIT_CLIENT_ID"},
		{name: "Missing client secret", unset: "REDDIT_CLIENT_SECRET", message: "REDDIT_CLIENT_SECRET"},
		{name: "Missing username", unset: "REDDIT_USERNAME", message: "REDDIT_USERNAME"},
		{name: "Missing password", unset: "REDDIT_PASSWORD", message: "REDDIT_PASSWORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setCredentials(t)
			t.Setenv(tt.unset, "")

			cfg, err := Load()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad_InvalidSettings(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "Unknown transport", key: "MCP_TRANSPORT", value: "websocket"},
		{name: "Zero timeout", key: "REDDIT_TIMEOUT_SECONDS", value: "0"},
		{name: "Negative rate", key: "REDDIT_REQUESTS_PER_MINUTE", value: "-1"},
		{name: "Zero burst", key: "REDDIT_RATE_BURST", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setCredentials(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestConfig_RedditSession(t *testing.T) {
	setCredentials(t)
	t.Setenv("REDDIT_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	creds := cfg.RedditCredentials()
	assert.Equal(t, "client_id", creds.ClientID)
	assert.Equal(t, "client_secret", creds.ClientSecret)
	assert.Equal(t, "spez", creds.Username)
	assert.Equal(t, "hunter2", creds.Password)
	assert.Equal(t, cfg.UserAgent, creds.UserAgent)

	assert.Equal(t, 5*time.Second, cfg.RequestTimeout())
	assert.Len(t, cfg.SessionOptions(), 2)
}
