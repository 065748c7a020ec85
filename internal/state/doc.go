// Package state provides thread-safe state management for spotctl.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing the
// spot list between the background poller and the UI. It acts as the
// coordination point where polling updates meet UI rendering.
//
// # Concurrency Model
//
// The Store uses a readers-writer lock:
//
//   - Update(): Acquires write lock (exclusive access)
//   - Snapshot(): Acquires read lock (concurrent reads allowed)
//
// This allows the UI to read frequently without blocking the poller, and
// vice versa. The lock is held only during copy operations, not during
// network I/O or rendering.
//
// # Update Semantics
//
// The Update method has special error handling behavior:
//
//	// Success case: Replace the spot list
//	store.Update(spots, nil)
//	→ snapshot.Spots = spots
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Error case: Keep old data, record error
//	store.Update(nil, err)
//	→ snapshot.Spots = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// This ensures the UI always has the most recent successful data to
// display while also being informed of polling failures. After two
// consecutive failures the snapshot reports the backend as offline.
//
// # Defensive Copying
//
// Both Update and Snapshot clone the spot slice and the error value so the
// UI and the poller never share mutable state.
//
// The Store is safe to construct with zero value:
//
//	store := &state.Store{}  // Ready to use immediately
package state
