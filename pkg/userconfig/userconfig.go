// Package userconfig provides user-level configuration for segue.
// This configuration is stored in ~/.config/segue/config.yaml and contains
// user preferences like the theme mode and motion settings.
package userconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/natefinch/atomic"

	"segue/pkg/paths"
)

// CurrentVersion is the current version of the user config format
const CurrentVersion = "v1"

// Settings represents global user settings
type Settings struct {
	// Theme is the theme preference: "light", "dark" or "system".
	// Anything else is treated as "system".
	Theme string `yaml:"theme,omitempty"`
	// ReduceMotion disables all transition animations when true
	ReduceMotion bool `yaml:"reduce_motion,omitempty"`
	// Locale is the preferred content locale (e.g. "en", "ja")
	Locale string `yaml:"locale,omitempty"`
	// FooterURL overrides the URL the footer partial is fetched from
	FooterURL string `yaml:"footer_url,omitempty"`
}

// Config represents the user-level segue configuration
type Config struct {
	// Version is the config format version
	Version string `yaml:"version,omitempty"`
	// Settings contains global user settings
	Settings *Settings `yaml:"settings,omitempty"`
}

// Path returns the path to the config file
func Path() string {
	return filepath.Join(paths.GetConfigDir(), "config.yaml")
}

// Load loads the user configuration from the config file.
// A missing file yields an empty config, not an error.
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(configPath string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Save saves the configuration to the config file
func (c *Config) Save() error {
	return c.saveTo(Path())
}

func (c *Config) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Ensure version is always set to current version when saving
	c.Version = CurrentVersion

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return atomic.WriteFile(path, bytes.NewReader(data))
}
