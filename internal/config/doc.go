// Package config provides configuration management for book-catalog.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Environment overrides (optionally from a .env.local file)
//   - Conversion to cover.Options and render.Options for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Reads https://jas2485.github.io/assignment-4/books.json
//	// Probes cover images, 8 at a time
//	// Classics are books published before 1960
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/bookshelf.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment
//
//	_ = config.LoadEnvFile(config.DefaultEnvFile)
//	err := settings.ApplyEnv() // BOOKSHELF_SOURCE_URL, BOOKSHELF_LOG_LEVEL, ...
package config
