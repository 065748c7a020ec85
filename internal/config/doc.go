// Package config handles loading and parsing spotctl configuration files.
//
// # Overview
//
// This package reads spotctl's TOML configuration to discover the TwinSync
// Spot backend's address, an optional Home Assistant ingress prefix, and the
// polling cadence for the background refresher.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/spotctl/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/spotctl/config.toml
//   - Server URL: http://127.0.0.1:8099
//   - Ingress path: "" (direct backend access)
//   - Token: "" (no Authorization header)
//   - Poll interval: 30 seconds
//
// # TOML Format
//
// Example spotctl config.toml:
//
//	server_url = "http://homeassistant.local:8123"
//	ingress_path = "/api/hassio_ingress/abc123"
//	token = "eyJhbGciOi..."
//	poll_seconds = 15
//
// All fields are optional. Tilde expansion is performed on the config file
// path itself.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead. This
// allows spotctl to work out-of-the-box against a local backend.
package config
