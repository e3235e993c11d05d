// Package config handles loading and parsing BaroHub configuration files.
//
// # Overview
//
// This package reads BaroHub's TOML configuration to discover the data
// directory, support contact URL, and log level. The set of fields is
// deliberately small; everything else the app needs has a built-in default.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/barohub/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/barohub/config.toml
//   - Data directory: ~/.local/share/barohub
//   - Database: <data_dir>/db
//   - Log file: <data_dir>/barohub.log
//   - Support URL: https://wa.me/252610000000
//   - Log level: info
//
// # TOML Format
//
// Example config.toml:
//
//	data_dir = "~/.local/share/barohub"
//	support_url = "https://wa.me/252610000000"
//	log_level = "debug"
//
// All fields are optional. Tilde expansion is performed automatically on
// data_dir.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead.
// This allows BaroHub to work out-of-the-box without configuration.
//
// # Design Philosophy
//
// The config package is read-only and stateless - it loads configuration
// once at startup and returns an immutable Config struct. No global state
// or singleton patterns are used.
package config
