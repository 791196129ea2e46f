// Package config loads the application configuration from a YAML file in
// the user's config directory.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	Reminder    ReminderConfig `yaml:"reminder"`
	Update      UpdateConfig   `yaml:"update"`
	KeyMappings KeyMappings    `yaml:"key_mappings"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// DatabaseConfig overrides where the task database lives. An empty path
// means the default location inside the user config directory.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ReminderConfig controls the periodic break reminder
type ReminderConfig struct {
	// Disabled rather than Enabled so the zero value keeps the reminder on
	Disabled        bool `yaml:"disabled"`
	IntervalMinutes int  `yaml:"interval_minutes"`
}

// UpdateConfig controls the release-feed update check. The feed is never
// contacted unless Check is true or `quado version --check` is run.
type UpdateConfig struct {
	Check   bool   `yaml:"check"`
	FeedURL string `yaml:"feed_url"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return Default(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "quado", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "quado", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Reminder.IntervalMinutes <= 0 {
		c.Reminder.IntervalMinutes = 60
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.applyDefaults()
}
