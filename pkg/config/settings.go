package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Supported export formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Settings holds user display preferences for the CLI.
type Settings struct {
	// Default format for the export command (yaml or json).
	DefaultFormat string `yaml:"default_format"`
	// Number of decimal places used in the list table.
	Precision int `yaml:"precision"`
	// Disables ANSI colors in all output.
	NoColor bool `yaml:"no_color,omitempty"`
}

// DefaultSettings returns the built-in preferences used when no settings
// file exists.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultFormat: FormatYAML,
		Precision:     2,
	}
}

// Validate checks that the settings hold usable values.
func (s *Settings) Validate() error {
	if s.DefaultFormat != FormatYAML && s.DefaultFormat != FormatJSON {
		return fmt.Errorf("unknown default format %q (expected %s or %s)", s.DefaultFormat, FormatYAML, FormatJSON)
	}
	if s.Precision < 0 {
		return fmt.Errorf("precision must be non-negative, got %d", s.Precision)
	}
	return nil
}

// LoadSettings loads settings from the default location
func LoadSettings() (*Settings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	settingsPath := filepath.Join(homeDir, ".h2cat", "config.yaml")
	return LoadSettingsFromFile(settingsPath)
}

// LoadSettingsFromFile loads settings from a specific file
func LoadSettingsFromFile(path string) (*Settings, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return settings, nil
}

// SaveSettings saves the settings to the default location
func SaveSettings(settings *Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	settingsDir := filepath.Join(homeDir, ".h2cat")
	if err := os.MkdirAll(settingsDir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	return SaveSettingsToFile(settings, filepath.Join(settingsDir, "config.yaml"))
}

// SaveSettingsToFile saves the settings to a specific file
func SaveSettingsToFile(settings *Settings, path string) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
