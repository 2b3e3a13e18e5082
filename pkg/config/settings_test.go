package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsFromFileMissing(t *testing.T) {
	settings, err := LoadSettingsFromFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}

	if settings.DefaultFormat != FormatYAML {
		t.Errorf("Expected default format yaml, got %s", settings.DefaultFormat)
	}

	if settings.Precision != 2 {
		t.Errorf("Expected default precision 2, got %d", settings.Precision)
	}

	if settings.NoColor {
		t.Error("Expected color enabled by default")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	saved := &Settings{
		DefaultFormat: FormatJSON,
		Precision:     3,
		NoColor:       true,
	}
	if err := SaveSettingsToFile(saved, path); err != nil {
		t.Fatalf("Failed to save settings: %v", err)
	}

	loaded, err := LoadSettingsFromFile(path)
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}

	if loaded.DefaultFormat != FormatJSON {
		t.Errorf("Expected format json, got %s", loaded.DefaultFormat)
	}
	if loaded.Precision != 3 {
		t.Errorf("Expected precision 3, got %d", loaded.Precision)
	}
	if !loaded.NoColor {
		t.Error("Expected no_color true")
	}
}

func TestLoadSettingsFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_format: xml\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	if _, err := LoadSettingsFromFile(path); err == nil {
		t.Error("Expected an error for an unknown format")
	}
}

func TestValidate(t *testing.T) {
	settings := DefaultSettings()
	if err := settings.Validate(); err != nil {
		t.Errorf("Default settings must validate: %v", err)
	}

	settings.Precision = -1
	if err := settings.Validate(); err == nil {
		t.Error("Expected an error for negative precision")
	}
}
