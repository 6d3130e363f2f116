// Package config loads depfetch configuration from an optional yaml file
// with environment-variable overrides. A missing config file is not an
// error; defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/depfetch/depfetch/internal/logging"
)

// Environment overrides, applied after the config file.
const (
	EnvLogLevel  = "DEPFETCH_LOG_LEVEL"
	EnvLogFormat = "DEPFETCH_LOG_FORMAT"
	EnvNPMBinary = "DEPFETCH_NPM"
)

// Config is the top-level depfetch configuration.
type Config struct {
	NPM     NPMConfig     `yaml:"npm"`
	Logging LoggingConfig `yaml:"logging"`
}

// NPMConfig configures the external package manager invocation.
type NPMConfig struct {
	// Binary overrides the package manager executable. Useful for
	// npm-compatible tools that emit the same install output dialect.
	Binary string `yaml:"binary"`
}

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error
	Format string `yaml:"format"` // console or json
	File   string `yaml:"file"`   // optional log file path
}

// ToLoggingConfig bridges the config section to the logging package.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := "stderr"
	if lc.File != "" {
		output = "file"
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// DefaultPath returns the default config file location,
// $HOME/.depfetch/config.yaml. Returns empty string when the home directory
// cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".depfetch", "config.yaml")
}

// defaults returns the built-in configuration.
func defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the config file at path on top of defaults and applies
// environment overrides. An empty path selects DefaultPath; a missing file
// yields defaults plus overrides.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing config is fine.
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// New loads configuration from the default location, falling back to
// defaults on any error.
func New() *Config {
	cfg, err := Load("")
	if err != nil {
		cfg = defaults()
		applyEnv(cfg)
	}
	return cfg
}

// applyEnv overrides config values from the environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvNPMBinary); v != "" {
		cfg.NPM.Binary = v
	}
}
