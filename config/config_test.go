package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
rightnow:
  host: https://community.example.com
  api_key: API
  secret_key: SECRET
  timeout: 5s
logging:
  level: debug
  format: json
filter:
  presets:
    popular: view_count > 500
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://community.example.com", cfg.RightNow.Host)
	assert.Equal(t, "API", cfg.RightNow.APIKey)
	assert.Equal(t, "SECRET", cfg.RightNow.SecretKey)
	assert.Equal(t, 5*time.Second, cfg.RightNow.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, map[string]string{"popular": "view_count > 500"}, cfg.Filter.Presets)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
rightnow:
  host: https://community.example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hl.api@hivelive.com", cfg.RightNow.User)
	assert.Equal(t, "2010-05-15", cfg.RightNow.Version)
	assert.Equal(t, 30*time.Second, cfg.RightNow.Timeout)
	assert.False(t, cfg.RightNow.Debug)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
rightnow:
  host: https://community.example.com
  user: file@example.com
`)

	t.Setenv("RIGHTNOW_HOST", "https://other.example.com")
	t.Setenv("RIGHTNOW_USER", "env@example.com")
	t.Setenv("RIGHTNOW_SECRET_KEY", "FROM_ENV")
	t.Setenv("RIGHTNOW_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://other.example.com", cfg.RightNow.Host)
	assert.Equal(t, "env@example.com", cfg.RightNow.User)
	assert.Equal(t, "FROM_ENV", cfg.RightNow.SecretKey)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "error reading config")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			RightNow: RightNowConfig{Host: "https://community.example.com"},
			Logging:  LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing host",
			mutate:  func(c *Config) { c.RightNow.Host = " " },
			wantErr: "rightnow.host is required",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.RightNow.Timeout = -time.Second },
			wantErr: "rightnow.timeout must not be negative",
		},
		{
			name:    "invalid level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "invalid logging level: loud",
		},
		{
			name:   "level is case insensitive",
			mutate: func(c *Config) { c.Logging.Level = "TRACE" },
		},
		{
			name:    "invalid format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format: xml",
		},
		{
			name:    "empty preset",
			mutate:  func(c *Config) { c.Filter.Presets = map[string]string{"blank": ""} },
			wantErr: "filter preset 'blank' has an empty expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
