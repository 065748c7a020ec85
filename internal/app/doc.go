// Package app wires spotctl's pieces together and runs the application.
//
// # Overview
//
// Setup loads the TOML config and user preferences, resolves the Home
// Assistant ingress prefix, and builds the API client and snapshot store.
// Run performs Setup, primes the store with an initial fetch, starts the
// background poller, and hands control to the TUI.
//
// # Ingress Resolution
//
// The base path prepended to every API request comes from the first source
// that yields one:
//
//  1. SPOTCTL_INGRESS_PATH environment variable (supervisor-injected)
//  2. ingress_path in the config file
//  3. An /api/hassio_ingress/<token> prefix embedded in the server URL path
//
// Outside Home Assistant all three are empty and requests go straight to
// the backend.
//
// # Polling
//
// The poller refreshes the spot list at the configured cadence. While the
// backend is unreachable the interval doubles per consecutive failure, up
// to a 30 second cap, and resets on the first successful fetch. The store
// keeps the last good data during outages so the UI never goes blank.
package app
