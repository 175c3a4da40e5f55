// Package config loads pngctl defaults from a YAML file.
//
// The file is selected by the --config flag or, failing that, the
// PNGCTL_CONFIG environment variable. With neither set, Default() is used.
// Command-line flags always win over values from the file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/pngkit/internal/logger"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "PNGCTL_CONFIG"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds pngctl defaults.
type Config struct {
	// Output selects text or json rendering for listing commands.
	Output string `yaml:"output"`

	// Backup writes <file>.bak before a file is modified in place.
	Backup bool `yaml:"backup"`

	// LogLevel is the minimum level logged when verbose output is on.
	LogLevel string `yaml:"log_level"`

	// Text configures the text subcommand.
	Text TextConfig `yaml:"text"`
}

// TextConfig holds defaults for textual chunks.
type TextConfig struct {
	// Compress stores new text as zTXt instead of tEXt.
	Compress bool `yaml:"compress"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output:   OutputText,
		LogLevel: "info",
	}
}

// Load resolves the config path from flagPath or PNGCTL_CONFIG and loads it.
// An empty path from both sources returns Default().
func Load(flagPath string) (*Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path over Default().
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error
	if c.Output != OutputText && c.Output != OutputJSON {
		errs = append(errs, fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, c.Output))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}
