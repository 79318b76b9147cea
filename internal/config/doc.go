// Package config provides configuration management for Turbo Garage.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Database at ~/.turbogarage/garage.db
//	// Embedded 2025 seed catalog
//	// Attached images resized to fit 800x800
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.DatabasePath = "/custom/path/garage.db"
//	err := settings.Save(config.DefaultPath())
package config
