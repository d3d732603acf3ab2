package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()
	if cfg.Strategy != "smart_balance" {
		t.Errorf("default strategy = %q", cfg.Strategy)
	}
	if cfg.TasksFile != "tasks.toml" {
		t.Errorf("default tasks file = %q", cfg.TasksFile)
	}
	if cfg.Addr != ":8787" {
		t.Errorf("default addr = %q", cfg.Addr)
	}
	if cfg.TelemetryPath != "" || cfg.Verbose {
		t.Errorf("telemetry/verbose should default off: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("strategy", "fastest_wins")
	viper.Set("addr", "127.0.0.1:9000")
	viper.Set("verbose", true)

	cfg := Load()
	if cfg.Strategy != "fastest_wins" || cfg.Addr != "127.0.0.1:9000" || !cfg.Verbose {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}
