package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string          `yaml:"addr"`
	Env          string          `yaml:"env"`
	APITimeout   time.Duration   `yaml:"timeout"`
	DatabasePath string          `yaml:"database_path"`
	Seed         bool            `yaml:"seed"`
	LogLevel     string          `yaml:"log_level"`
	Reminders    RemindersConfig `yaml:"reminders"`
}

type RemindersConfig struct {
	Enabled      bool          `yaml:"enabled"`
	ScanInterval time.Duration `yaml:"scan_interval"`
	Lookahead    time.Duration `yaml:"lookahead"`
}

var validEnvs = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
	"test":        true,
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// LoadConfig builds the config from environment defaults and, when path is
// set, overlays the YAML file found there.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:         getEnv("PATHFINDER_ADDR", ":8080"),
		Env:          getEnv("PATHFINDER_ENV", "development"),
		APITimeout:   15 * time.Second,
		DatabasePath: getEnv("PATHFINDER_DATABASE_PATH", ""),
		Seed:         getEnvBool("PATHFINDER_SEED", true),
		LogLevel:     getEnv("PATHFINDER_LOG_LEVEL", "info"),
		Reminders: RemindersConfig{
			Enabled:      true,
			ScanInterval: time.Minute,
			Lookahead:    24 * time.Hour,
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Addr == "" {
		return fmt.Errorf("addr must be set")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	if c.Reminders.Enabled {
		if c.Reminders.ScanInterval <= 0 {
			return fmt.Errorf("reminders.scan_interval must be positive")
		}
		if c.Reminders.Lookahead < 0 {
			return fmt.Errorf("reminders.lookahead must not be negative")
		}
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// PersistenceEnabled reports whether store snapshots are kept in SQLite.
func (c *Config) PersistenceEnabled() bool {
	return c.DatabasePath != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
