// Package app provides the orchestration layer for the BaroHub application.
//
// # Overview
//
// This package wires together configuration, storage, the course catalog,
// and the UI to create the complete BaroHub TUI experience. It serves as the
// composition root where all dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/barohub/config.toml
//  2. Create the data directory and open the structured log file
//  3. Open the Badger key-value database under the data directory
//  4. Open the catalog store, hydrating courses and admin mode from storage
//  5. Load user preferences (theme, start tab)
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Error Handling
//
// The app package distinguishes between fatal and recoverable errors:
//
// Fatal errors (returned from Run):
//   - Config file present but unreadable or malformed
//   - Data directory cannot be created
//   - Log file cannot be opened
//   - Database cannot be opened (e.g. held by another process)
//
// Recoverable conditions (logged, startup continues):
//   - Missing config file (defaults apply)
//   - Missing or unreadable preferences file (defaults apply)
//   - Missing or undecodable persisted catalog (seed data applies)
//
// This keeps first-run friction at zero: a fresh machine gets the built-in
// catalog and default settings without any setup.
//
// # Configuration
//
// The Options struct allows callers to customize:
//
//   - ConfigPath: Path to config.toml (default: ~/.config/barohub/config.toml)
//   - PrefsPath: Path to prefs.toml (default: ~/.config/barohub/prefs.toml)
//   - DataDir: Overrides the configured data directory
//
// # Design Rationale
//
// This package intentionally keeps orchestration logic minimal. Business
// logic lives in domain packages (catalog, payment, storage, ui). The app
// package simply connects these pieces with sensible defaults for a
// single-user learning catalog.
package app
