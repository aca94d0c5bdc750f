// Package config provides configuration management for the setlist tools.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Conversion to VolumeConfig, TagConfig and PlaylistFormat
//
// # Loading from File
//
//	settings, err := config.Load("settings.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.OutputDir = "/srv/books"
//	err := settings.Save("settings.json")
//
// # Configuration Options
//
// Settings includes options for:
//   - Data file locations (local paths or URLs)
//   - Book volume naming, layout and cover image
//   - Concurrency limits
//   - Recording tags and playlists
//   - Log level and format
package config
