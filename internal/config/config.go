package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

// Transport values accepted in MCP_TRANSPORT
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Transport string
	Port      string
	BaseURL   string
	Debug     bool

	// Reddit account credentials (all required)
	RedditClientID     string
	RedditClientSecret string
	RedditUsername     string
	RedditPassword     string
	UserAgent          string

	// Session tuning
	RequestTimeoutSeconds int
	RequestsPerMinute     float64
	RateBurst             int

	// Cron expressions for periodic jobs, empty disables them
	MetricsLogSchedule   string
	SessionCheckSchedule string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Transport: strings.ToLower(getEnv("MCP_TRANSPORT", TransportStdio)),
		Port:      getEnv("PORT", "8080"),
		BaseURL:   getEnv("BASE_URL", ""),
		Debug:     getBoolEnv("DEBUG", false),

		RedditClientID:     getEnv("REDDIT_CLIENT_ID", ""),
		RedditClientSecret: getEnv("REDDIT_CLIENT_SECRET", ""),
		RedditUsername:     getEnv("REDDIT_USERNAME", ""),
		RedditPassword:     getEnv("REDDIT_PASSWORD", ""),

		RequestTimeoutSeconds: getIntEnv("REDDIT_TIMEOUT_SECONDS", 30),
		RequestsPerMinute:     getFloatEnv("REDDIT_REQUESTS_PER_MINUTE", 60),
		RateBurst:             getIntEnv("REDDIT_RATE_BURST", 10),

		MetricsLogSchedule:   os.Getenv("METRICS_LOG_SCHEDULE"),
		SessionCheckSchedule: getEnv("SESSION_CHECK_SCHEDULE", ""),
	}
	if _, set := os.LookupEnv("METRICS_LOG_SCHEDULE"); !set {
		cfg.MetricsLogSchedule = "@every 1h"
	}

	cfg.UserAgent = getEnv("REDDIT_USER_AGENT", DefaultUserAgent(cfg.RedditUsername))

	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%s", cfg.Port)
	}

	// Validate required configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DefaultUserAgent builds the user agent string Reddit expects from script apps
func DefaultUserAgent(username string) string {
	return fmt.Sprintf("MCP:reddit-server:v1.0 (by /u/%s)", username)
}

// RedditCredentials returns the script application credentials.
func (c *Config) RedditCredentials() reddit.Credentials {
	return reddit.Credentials{
		ClientID:     c.RedditClientID,
		ClientSecret: c.RedditClientSecret,
		Username:     c.RedditUsername,
		Password:     c.RedditPassword,
		UserAgent:    c.UserAgent,
	}
}

// RequestTimeout bounds a single Reddit request.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// SessionOptions tunes the Reddit session from configuration.
func (c *Config) SessionOptions() []reddit.Option {
	return []reddit.Option{
		reddit.WithTimeout(c.RequestTimeout()),
		reddit.WithRateLimit(c.RequestsPerMinute, c.RateBurst),
	}
}

func (c *Config) validate() error {
	var missing []string
	for _, required := range []struct {
		key   string
		value string
	}{
		{"REDDIT_CLIENT_ID", c.RedditClientID},
		{"REDDIT_CLIENT_SECRET", c.RedditClientSecret},
		{"REDDIT_USERNAME", c.RedditUsername},
		{"REDDIT_PASSWORD", c.RedditPassword},
	} {
		if required.value == "" {
			missing = append(missing, required.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if c.Transport != TransportStdio && c.Transport != TransportSSE {
		return fmt.Errorf("MCP_TRANSPORT must be '%s' or '%s'", TransportStdio, TransportSSE)
	}

	if c.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("REDDIT_TIMEOUT_SECONDS must be positive")
	}

	if c.RequestsPerMinute <= 0 || c.RateBurst <= 0 {
		return fmt.Errorf("REDDIT_REQUESTS_PER_MINUTE and REDDIT_RATE_BURST must be positive")
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
