// Package config provides configuration management for flac2mp3.
//
// This package handles:
//   - Loading and saving settings from JSON or TOML files
//   - Default configuration values
//   - Sizing the worker pool from the processor count
//
// # Default Settings
//
// Use DefaultSettings() to get the stock behaviour:
//
//	settings := config.DefaultSettings()
//	// flac -> lame at 320 kbps CBR, joint stereo
//	// 2 workers per processor
//	// exit codes of flac/lame are not checked
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/flac2mp3.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// Files ending in ".toml" are read as TOML, everything else as JSON.
//
// # Worker Pool Size
//
// The pool size is resolved once at startup and handed to the scheduler:
//
//	workers := settings.PoolSize(runtime.NumCPU())
package config
