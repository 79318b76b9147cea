package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Storage settings
	DatabasePath string `json:"database_path"`
	SeedPath     string `json:"seed_path"`

	// Browsing defaults
	DefaultYear int `json:"default_year"`

	// Image attachment settings
	ResizeImages bool `json:"resize_images"`
	ImageMaxSize int  `json:"image_max_size"`

	// Export settings
	ExportFormat string `json:"export_format"` // text, markdown, csv
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		DatabasePath: filepath.Join(homeDir, ".turbogarage", "garage.db"),
		SeedPath:     "",
		DefaultYear:  2025,

		ResizeImages: true,
		ImageMaxSize: 800,

		ExportFormat: "text",
	}
}

// DefaultPath returns the default location of the settings file.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".turbogarage", "settings.json")
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
