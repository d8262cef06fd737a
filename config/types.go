package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	RightNow  RightNowConfig  `mapstructure:"rightnow"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Filter    FilterConfig    `mapstructure:"filter"`
}

// RightNowConfig holds the community endpoint and API credentials
type RightNowConfig struct {
	Host      string        `mapstructure:"host"`
	APIKey    string        `mapstructure:"api_key"`
	SecretKey string        `mapstructure:"secret_key"`
	User      string        `mapstructure:"user"`
	Version   string        `mapstructure:"version"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Debug     bool          `mapstructure:"debug"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// TelemetryConfig toggles tracing of outgoing API calls
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// FilterConfig contains named filter expressions
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}
