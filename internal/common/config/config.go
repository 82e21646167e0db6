// internal/common/config/config.go
package config

import (
	"time"

	apperrors "proposal-assistant/internal/common/errors"
)

// DefaultProposalAPIBaseURL is used when no base URL is configured.
const DefaultProposalAPIBaseURL = "https://api.proposales.com"

// Config is the main application configuration struct.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Server      ServerConfig      `mapstructure:"server"`
	ProposalAPI ProposalAPIConfig `mapstructure:"proposal_api"`
	OpenAI      OpenAIConfig      `mapstructure:"openai"`
	Session     SessionConfig     `mapstructure:"session"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // milliseconds
}

// ProposalAPIConfig holds credentials for the remote proposal-management API.
type ProposalAPIConfig struct {
	APIKey    string `mapstructure:"api_key"`
	CompanyID string `mapstructure:"company_id"`
	BaseURL   string `mapstructure:"base_url"`
	Timeout   int    `mapstructure:"timeout"` // milliseconds
}

// Resolved carries the outgoing request headers and base URL for the remote
// proposal API.
type Resolved struct {
	Headers map[string]string
	BaseURL string
}

// Resolve builds the outgoing headers and base URL. It fails with a
// configuration error when the required API key is absent. Calling it twice
// against unchanged configuration yields identical results.
func (p ProposalAPIConfig) Resolve() (*Resolved, error) {
	if p.APIKey == "" {
		return nil, apperrors.NewConfigurationError("PROPOSALES_API_KEY")
	}

	headers := map[string]string{
		"Authorization": "Bearer " + p.APIKey,
		"Content-Type":  "application/json",
	}
	if p.CompanyID != "" {
		headers["X-Company-Id"] = p.CompanyID
	}

	baseURL := p.BaseURL
	if baseURL == "" {
		baseURL = DefaultProposalAPIBaseURL
	}

	return &Resolved{Headers: headers, BaseURL: baseURL}, nil
}

// OpenAIConfig holds settings for the LLM completion service.
type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Timeout     int     `mapstructure:"timeout"` // milliseconds
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// SessionConfig holds settings for the Redis-backed conversation store.
type SessionConfig struct {
	RedisAddress  string `mapstructure:"redis_address"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	TTL           int    `mapstructure:"ttl"` // seconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
