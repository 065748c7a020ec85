// Package ui implements the Bubble Tea TUI for spotctl.
//
// # Overview
//
// The UI shows the monitored spots as a list with a detail view per spot,
// a camera browser, and a form for saving the Home Assistant token. Spot
// actions (check, reset, snooze, delete) run through the shared action
// runner; their outcomes surface as transient toasts.
//
// # Layout
//
// A status header sits on top, a key-hint footer at the bottom, and a
// collapsible sidebar on the left. The sidebar starts collapsed on
// terminals narrower than 90 columns; later shrinks across that width
// collapse it again, but a sidebar the user opened on a narrow terminal
// stays open.
//
// # Themes
//
// Two themes ship, light and dark. A valid stored preference wins;
// otherwise the terminal background decides. Pressing T toggles the theme
// and persists the choice.
//
// # Concurrency
//
// The background poller writes to the state.Store; the UI reads immutable
// snapshots on a tick. Spot actions run inside tea.Cmd goroutines and
// report back via messages, so the model is only ever mutated on the
// Bubble Tea update loop.
package ui
