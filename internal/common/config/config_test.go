// internal/common/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "proposal-assistant/internal/common/errors"
)

func TestProposalAPIConfig_Resolve(t *testing.T) {
	cfg := ProposalAPIConfig{
		APIKey:    "secret-key",
		CompanyID: "42",
		BaseURL:   "https://api.example.com",
	}

	resolved, err := cfg.Resolve()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", resolved.BaseURL)
	assert.Equal(t, "Bearer secret-key", resolved.Headers["Authorization"])
	assert.Equal(t, "application/json", resolved.Headers["Content-Type"])
	assert.Equal(t, "42", resolved.Headers["X-Company-Id"])
}

func TestProposalAPIConfig_Resolve_MissingAPIKey(t *testing.T) {
	cfg := ProposalAPIConfig{}

	_, err := cfg.Resolve()
	require.Error(t, err)

	var configErr *apperrors.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "PROPOSALES_API_KEY", configErr.Variable)
	assert.Contains(t, err.Error(), "PROPOSALES_API_KEY")
}

func TestProposalAPIConfig_Resolve_Defaults(t *testing.T) {
	cfg := ProposalAPIConfig{APIKey: "secret-key"}

	resolved, err := cfg.Resolve()
	require.NoError(t, err)

	assert.Equal(t, DefaultProposalAPIBaseURL, resolved.BaseURL)
	// No company configured, no company header.
	_, present := resolved.Headers["X-Company-Id"]
	assert.False(t, present)
}

func TestProposalAPIConfig_Resolve_Idempotent(t *testing.T) {
	cfg := ProposalAPIConfig{
		APIKey:    "secret-key",
		CompanyID: "42",
	}

	first, err := cfg.Resolve()
	require.NoError(t, err)
	second, err := cfg.Resolve()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, GetDuration(5000))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
