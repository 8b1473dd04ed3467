// Package config loads the browser's configuration from a YAML file with
// environment variable overrides. Everything has a sensible default so the
// binary runs with no config file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all url-scheme-collection configuration.
type Config struct {
	// UI selects the theme.
	UI UIConfig `yaml:"ui"`

	// Catalog points at an optional user catalog overlay.
	Catalog CatalogConfig `yaml:"catalog"`

	// Logging configures the zap logger used by the CLI commands.
	Logging LoggingConfig `yaml:"logging"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	Theme string `yaml:"theme"` // auto, light, dark
}

// CatalogConfig configures catalog sources.
type CatalogConfig struct {
	// Path to a user catalog YAML file merged over the built-in data.
	// Empty means built-in data only.
	Path string `yaml:"path"`

	// Watch reloads the user catalog when the file changes.
	Watch bool `yaml:"watch"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty logs to stderr
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme: "auto",
		},
		Catalog: CatalogConfig{
			Watch: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the conventional config location,
// ~/.config/schemes/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "schemes", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults, not an error. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file, creating parent directories.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies SCHEMES_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if theme := os.Getenv("SCHEMES_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if path := os.Getenv("SCHEMES_CATALOG"); path != "" {
		c.Catalog.Path = path
	}
	if level := os.Getenv("SCHEMES_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("SCHEMES_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
}
