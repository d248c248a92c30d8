package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kareem-3del/Msegat/pkg/msegat"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MSEGAT_USERNAME", "")
	t.Setenv("MSEGAT_API_KEY", "")
	t.Setenv("MSEGAT_SENDER", "")
	t.Setenv("MSEGAT_API_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, msegat.DefaultSender, cfg.Gateway.Sender)
	assert.Equal(t, msegat.DefaultBaseURL, cfg.Gateway.BaseURL)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "text", cfg.Server.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MSEGAT_USERNAME", "acme")
	t.Setenv("MSEGAT_API_KEY", "secret")
	t.Setenv("MSEGAT_SENDER", "ACME")
	t.Setenv("MSEGAT_API_URL", "http://localhost:8080")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.Gateway.Username)
	assert.Equal(t, "secret", cfg.Gateway.APIKey)
	assert.Equal(t, "ACME", cfg.Gateway.Sender)
	assert.Equal(t, "http://localhost:8080", cfg.Gateway.BaseURL)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		gateway GatewayConfig
		wantErr string
	}{
		{
			name:    "complete credentials",
			gateway: GatewayConfig{Username: "acme", APIKey: "secret"},
		},
		{
			name:    "missing username",
			gateway: GatewayConfig{APIKey: "secret"},
			wantErr: "MSEGAT_USERNAME is required",
		},
		{
			name:    "missing api key",
			gateway: GatewayConfig{Username: "acme"},
			wantErr: "MSEGAT_API_KEY is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Gateway: tc.gateway}
			err := cfg.Validate()

			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.wantErr)
			}
		})
	}
}
