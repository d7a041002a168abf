// Package config loads the deskpilot configuration from an optional YAML
// file with environment overrides, once at startup.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the process configuration.
type Config struct {
	// Listen is the HTTP listen address, e.g. ":5000".
	Listen string `yaml:"listen"`

	// ForceSimulation forces the simulated backend regardless of detected
	// hardware capability.
	ForceSimulation bool `yaml:"force_simulation"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// OCRLanguages lists Tesseract language models for screen reading.
	OCRLanguages []string `yaml:"ocr_languages"`

	// Apps overlays extra entries on the application launch table,
	// mapping a friendly name to an argv vector.
	Apps map[string][]string `yaml:"apps"`

	// HistoryLimit caps the dispatch audit trail.
	HistoryLimit int `yaml:"history_limit"`

	// Redis, when Addr is set, stores the audit trail in Redis instead of
	// process memory.
	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig holds the optional Redis history store settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Listen:       ":5000",
		LogLevel:     "info",
		HistoryLimit: 100,
	}
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist, then applies environment overrides. A present-but-invalid
// file is an error, not a silent fallback.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file: defaults plus environment.
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv applies DESKPILOT_* environment overrides. The force-simulation
// variable mirrors the flag the rest of the system reads at startup.
func applyEnv(cfg *Config) {
	if v := os.Getenv("DESKPILOT_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("DESKPILOT_FORCE_SIMULATION"); v != "" {
		cfg.ForceSimulation = strings.EqualFold(v, "true") || v == "1"
	}
	if v := os.Getenv("DESKPILOT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DESKPILOT_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
}
