package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	ToggleNav  key.Binding
	Escape     key.Binding

	// View switching
	ViewList    key.Binding
	ViewCameras key.Binding
	ViewToken   key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Open   key.Binding

	// Spot actions
	Check    key.Binding
	CheckAll key.Binding
	Reset    key.Binding
	Snooze   key.Binding
	Unsnooze key.Binding
	Delete   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "Q"),
			key.WithHelp("Q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "toggle theme"),
		),
		ToggleNav: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle sidebar"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to spots"),
		),

		ViewList: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "spot list"),
		),
		ViewCameras: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "cameras"),
		),
		ViewToken: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "set HA token"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open spot"),
		),

		Check: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "check spot"),
		),
		CheckAll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "check all spots"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset spot"),
		),
		Snooze: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "snooze spot"),
		),
		Unsnooze: key.NewBinding(
			key.WithKeys("Z"),
			key.WithHelp("Z", "cancel snooze"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete spot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ViewList, k.ViewCameras, k.ViewToken, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom, k.Open},
		{k.Check, k.CheckAll, k.Reset, k.Snooze, k.Unsnooze, k.Delete},
		{k.CycleTheme, k.ToggleNav, k.Help, k.Quit},
	}
}
