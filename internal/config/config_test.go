package config

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("expected default base url, got %q", cfg.BaseURL)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected log defaults: level=%q format=%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CIELO_BASE_URL", "http://localhost:8080")
	t.Setenv("CIELO_LOG_FORMAT", "Console")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Fatalf("expected env base url, got %q", cfg.BaseURL)
	}
	if cfg.LogFormat != "console" {
		t.Fatalf("expected console format, got %q", cfg.LogFormat)
	}
}

func TestLoadChangedFlagWinsOverEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CIELO_BASE_URL", "http://from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("base-url", "", "")
	flags.String("log-level", "", "")
	if err := flags.Parse([]string{"--base-url", "http://from-flag"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://from-flag" {
		t.Fatalf("expected flag base url, got %q", cfg.BaseURL)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unset flag must not clobber default, got %q", cfg.LogLevel)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "relative base url", env: map[string]string{"CIELO_BASE_URL": "/posts"}},
		{name: "non http scheme", env: map[string]string{"CIELO_BASE_URL": "ftp://example.com"}},
		{name: "bad log format", env: map[string]string{"CIELO_LOG_FORMAT": "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(nil); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
