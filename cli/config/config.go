// Package config handles CLI configuration loading and persistence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvAPIKey is the environment variable holding the Gemini API key.
const EnvAPIKey = "GEMINI_API_KEY"

// Config represents the CLI configuration.
type Config struct {
	// DefaultModel is used when no --model flag is given.
	DefaultModel string `yaml:"default_model,omitempty"`

	// BaseURL overrides the Gemini API endpoint. Intended for proxies
	// and tests.
	BaseURL string `yaml:"base_url,omitempty"`

	// TimeoutSeconds bounds each API request. Zero keeps the client
	// default.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`

	// LogLevel sets the serve-mode log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultConfigPath returns the default config file location,
// ~/.nanobanana/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nanobanana", "config.yaml")
}

// LoadConfig reads the config file at path. A missing file is not an
// error: callers get an empty config and flag or environment values
// take over.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadEnv loads a .env file from the working directory when one
// exists. Variables already set in the process environment win, so an
// exported GEMINI_API_KEY is never clobbered by a stale file.
func LoadEnv() {
	_ = godotenv.Load()
}

// APIKey returns the Gemini API key from the process environment, or
// the empty string when unset.
func APIKey() string {
	return os.Getenv(EnvAPIKey)
}
