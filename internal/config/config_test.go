package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/garnizeh/pathfinder/internal/config"
)

func validConfig() *config.Config {
	return &config.Config{
		Addr:       ":8080",
		Env:        "development",
		APITimeout: 5 * time.Second,
		LogLevel:   "info",
		Reminders: config.RemindersConfig{
			Enabled:      true,
			ScanInterval: time.Minute,
			Lookahead:    time.Hour,
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *config.Config) {}},
		{name: "unknown env", mutate: func(c *config.Config) { c.Env = "qa" }, wantErr: true},
		{name: "empty addr", mutate: func(c *config.Config) { c.Addr = "" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *config.Config) { c.APITimeout = 0 }, wantErr: true},
		{name: "bad log level", mutate: func(c *config.Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "zero scan interval", mutate: func(c *config.Config) { c.Reminders.ScanInterval = 0 }, wantErr: true},
		{name: "negative lookahead", mutate: func(c *config.Config) { c.Reminders.Lookahead = -time.Second }, wantErr: true},
		{
			name: "disabled reminders skip interval checks",
			mutate: func(c *config.Config) {
				c.Reminders.Enabled = false
				c.Reminders.ScanInterval = 0
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected Validate to fail")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate failed unexpectedly: %v", err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Ensure environment does not interfere
	t.Setenv("PATHFINDER_ADDR", "")
	t.Setenv("PATHFINDER_ENV", "")
	t.Setenv("PATHFINDER_DATABASE_PATH", "")
	t.Setenv("PATHFINDER_SEED", "")
	t.Setenv("PATHFINDER_LOG_LEVEL", "")

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error for empty path: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected Addr: got %q want %q", cfg.Addr, ":8080")
	}
	if cfg.Env != "development" {
		t.Fatalf("unexpected Env: got %q", cfg.Env)
	}
	if cfg.APITimeout != 15*time.Second {
		t.Fatalf("unexpected APITimeout: got %v want %v", cfg.APITimeout, 15*time.Second)
	}
	if cfg.PersistenceEnabled() {
		t.Fatalf("expected persistence disabled by default")
	}
	if !cfg.Seed {
		t.Fatalf("expected seeding enabled by default")
	}
	if cfg.Reminders.ScanInterval != time.Minute || cfg.Reminders.Lookahead != 24*time.Hour {
		t.Fatalf("unexpected reminder defaults: %+v", cfg.Reminders)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("PATHFINDER_ADDR", ":7070")
	t.Setenv("PATHFINDER_DATABASE_PATH", "pf.db")
	t.Setenv("PATHFINDER_SEED", "false")

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Fatalf("unexpected Addr: got %q", cfg.Addr)
	}
	if !cfg.PersistenceEnabled() || cfg.DatabasePath != "pf.db" {
		t.Fatalf("unexpected DatabasePath: got %q", cfg.DatabasePath)
	}
	if cfg.Seed {
		t.Fatalf("expected seeding disabled")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("addr: \":9090\"\nenv: \"production\"\ntimeout: \"30s\"\ndatabase_path: \"test.db\"\nseed: false\nreminders:\n  scan_interval: \"10s\"\n  lookahead: \"2h\"\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error for file: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Fatalf("unexpected Addr: got %q want %q", cfg.Addr, ":9090")
	}
	if cfg.Env != "production" || cfg.IsDevelopment() {
		t.Fatalf("unexpected Env: got %q", cfg.Env)
	}
	if cfg.DatabasePath != "test.db" {
		t.Fatalf("unexpected DatabasePath: got %q want %q", cfg.DatabasePath, "test.db")
	}
	if cfg.APITimeout != 30*time.Second {
		t.Fatalf("unexpected APITimeout: got %v want %v", cfg.APITimeout, 30*time.Second)
	}
	if cfg.Seed {
		t.Fatalf("expected seed=false from file")
	}
	if cfg.Reminders.ScanInterval != 10*time.Second || cfg.Reminders.Lookahead != 2*time.Hour {
		t.Fatalf("unexpected reminders: %+v", cfg.Reminders)
	}
	if !cfg.Reminders.Enabled {
		t.Fatalf("reminders.enabled default should survive a partial reminders block")
	}
}

func TestLoadConfig_BadPath(t *testing.T) {
	if _, err := config.LoadConfig("/path/that/does/not/exist.yaml"); err == nil {
		t.Fatalf("expected error for nonexistent path, got nil")
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("::: not yaml :::"), 0o600); err != nil {
		t.Fatalf("failed to write bad yaml: %v", err)
	}

	if _, err := config.LoadConfig(path); err == nil {
		t.Fatalf("expected YAML decode error, got nil")
	}
}
