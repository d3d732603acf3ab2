// Package config loads runtime configuration for a triage session from
// viper: .triage.yaml, TRIAGE_* environment variables, and CLI flags.
package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for a triage session.
type Config struct {
	// Strategy is the default weighting strategy when none is given on the
	// command line or in a request.
	Strategy string `mapstructure:"strategy"`
	// TasksFile is the default task file for analyze, suggest, and tui.
	TasksFile string `mapstructure:"tasks_file"`
	// Addr is the listen address of the HTTP server.
	Addr string `mapstructure:"addr"`
	// TelemetryPath enables JSONL run telemetry when non-empty.
	TelemetryPath string `mapstructure:"telemetry_path"`
	Verbose       bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("strategy", "smart_balance")
	viper.SetDefault("tasks_file", "tasks.toml")
	viper.SetDefault("addr", ":8787")
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
