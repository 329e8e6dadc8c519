package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Packages []Package     `json:"packages"`
	Display  DisplayConfig `json:"display"`
}

// Package is one batch of sensor readings: a workout code and its positional data
type Package struct {
	Code string    `json:"code"`
	Data []float64 `json:"data"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	Header bool `json:"header"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultPackages returns the built-in sensor packages
func DefaultPackages() []Package {
	return []Package{
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Packages: DefaultPackages(),
		Display: DisplayConfig{
			Header: false,
		},
	}
}

// Load reads the configuration from ~/.workout-tracker/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	if len(cfg.Packages) == 0 {
		cfg.Packages = DefaultPackages()
	}

	return &cfg, nil
}

// Save writes the configuration to path
func Save(path string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks that every package names a workout code and carries data
func (c *Config) Validate() error {
	for i, p := range c.Packages {
		if p.Code == "" {
			return fmt.Errorf("packages[%d].code is required", i)
		}
		if len(p.Data) == 0 {
			return fmt.Errorf("packages[%d].data is required for code %q", i, p.Code)
		}
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".workout-tracker"), nil
}
