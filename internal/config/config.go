// Package config loads and saves the CLI configuration file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file is missing or partial.
const (
	DefaultAPIBaseURL             = "https://api.6ex.app"
	DefaultRefreshIntervalSeconds = 30
)

// Config holds the CLI configuration.
type Config struct {
	APIBaseURL             string `yaml:"api_base_url"`
	RefreshIntervalSeconds int    `yaml:"refresh_interval_seconds"`
}

// DefaultConfig returns a config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:             DefaultAPIBaseURL,
		RefreshIntervalSeconds: DefaultRefreshIntervalSeconds,
	}
}

// Load reads the config file at path. A missing file is not an error;
// defaults are returned. Missing fields fall back to defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.RefreshIntervalSeconds <= 0 {
		cfg.RefreshIntervalSeconds = DefaultRefreshIntervalSeconds
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories with 0700
// permissions. The file itself is written with 0600.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config/sixex.
func ConfigPath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "sixex")
	} else {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config", "sixex")
	}
	return filepath.Join(configDir, "config.yaml")
}
