package ui

import (
	"fmt"
	"strings"
	"time"
)

// renderHeader renders the top status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render("spotctl")}

	if m.snapshot.IsOffline() {
		parts = append(parts, styles.DangerText.Render("● OFFLINE"))
		parts = append(parts, styles.WarningText.Render("Retrying..."))
	} else if m.snapshot.LastError != nil {
		parts = append(parts, styles.WarningText.Render("● DEGRADED"))
	} else if m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, styles.WarningText.Render("Connecting..."))
	} else {
		parts = append(parts, styles.SuccessText.Render("● ON"))
	}

	parts = append(parts,
		styles.MutedText.Render("Spots:")+" "+
			styles.Text.Render(fmt.Sprintf("%d", len(m.snapshot.Spots))),
	)

	if attention := m.snapshot.NeedsAttention(); attention > 0 {
		parts = append(parts,
			styles.MutedText.Render("Attention:")+" "+
				styles.WarningText.Render(fmt.Sprintf("%d", attention)),
		)
	}

	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, styles.MutedText.Render(relativeTime(m.snapshot.LastUpdated)))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderFooter renders the key hint line.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	var hint string
	switch m.view {
	case ViewDetail:
		hint = "c check  r reset  z snooze  x delete  esc back  " + shortHelpHint(m.keys)
	case ViewCameras:
		hint = "esc back  " + shortHelpHint(m.keys)
	case ViewToken:
		// The token input captures plain keys, so no binding hints here.
		hint = "enter save  esc cancel"
	default:
		hint = "enter open  c check  C check all  z snooze  x delete  " + shortHelpHint(m.keys)
	}
	return styles.Footer.Width(m.width).Render(hint)
}

// shortHelpHint renders the always-available bindings from the key map.
func shortHelpHint(k keyMap) string {
	parts := make([]string, 0, 2)
	for _, b := range k.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// relativeTime formats an update timestamp with a coarse age suffix.
func relativeTime(t time.Time) string {
	s := t.Format("15:04:05")
	since := time.Since(t)
	switch {
	case since < time.Minute:
		return s + " (now)"
	case since < time.Hour:
		return s + fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	case since < 24*time.Hour:
		return s + fmt.Sprintf(" (%dh ago)", int(since.Hours()))
	}
	return s
}
