package ui

import (
	"fmt"
	"strings"
	"time"
)

// renderDetail renders the single-spot view: summary, learned patterns,
// and recent check history.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()

	if m.detailErr != nil {
		return styles.DangerText.Render("Failed to load spot: ") +
			styles.MutedText.Render(m.detailErr.Error())
	}
	if m.detail == nil {
		return styles.MutedText.Render("Loading spot...")
	}

	spot := m.detail.Spot
	now := time.Now()

	var b strings.Builder

	name := spot.Name
	if name == "" {
		name = fmt.Sprintf("spot %d", spot.ID)
	}
	b.WriteString(styles.Text.Bold(true).Render(name))
	b.WriteString("  ")
	b.WriteString(styles.StatusStyle(displayStatus(spot, now)).Render(statusLabel(displayStatus(spot, now))))
	b.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("%-14s", label)))
		b.WriteString(styles.Text.Render(value))
		b.WriteString("\n")
	}

	field("Camera", spot.CameraEntity)
	field("Type", spot.SpotType)
	field("Definition", spot.Definition)
	field("Streak", fmt.Sprintf("%d (best %d)", spot.CurrentStreak, spot.LongestStreak))
	if t := spot.ParsedLastCheck(); !t.IsZero() {
		field("Last check", relativeTime(t))
	}
	if spot.IsSnoozed(now) {
		field("Snoozed until", spot.SnoozedUntil)
	}

	memory := m.detail.Memory
	if memory.TotalChecks > 0 {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render("Patterns"))
		b.WriteString("\n")
		field("Checks", fmt.Sprintf("%d", memory.TotalChecks))
		if len(memory.Patterns.RecurringItems) > 0 {
			field("Recurring", strings.Join(memory.Patterns.RecurringItems, ", "))
		}
		field("Worst day", memory.Patterns.WorstDay)
		field("Best day", memory.Patterns.BestDay)
		field("Sorted by", memory.Patterns.UsuallySortedBy)
	}

	if len(m.detail.RecentChecks) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render("Recent checks"))
		b.WriteString("\n")
		for _, check := range m.detail.RecentChecks {
			badge := styles.StatusStyle(check.Status).Render(statusLabel(check.Status))
			line := badge + " " + styles.FaintText.Render(check.Timestamp)
			if len(check.ToSort) > 0 {
				line += " " + styles.Text.Render(strings.Join(check.ToSort, ", "))
			}
			if check.Notes != "" {
				line += " " + styles.MutedText.Render(check.Notes)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderCameras lists the Home Assistant camera entities the backend sees.
func (m Model) renderCameras() string {
	styles := m.theme.Styles()

	if m.camerasErr != nil {
		return styles.DangerText.Render("Failed to load cameras: ") +
			styles.MutedText.Render(m.camerasErr.Error())
	}
	if len(m.cameras) == 0 {
		return styles.MutedText.Render("No cameras found. Check the HA token under 't'.")
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Cameras"))
	b.WriteString("\n\n")
	for _, cam := range m.cameras {
		name := cam.Name
		if name == "" {
			name = cam.EntityID
		}
		stateStyle := styles.MutedText
		if cam.State == "unavailable" {
			stateStyle = styles.DangerText
		}
		b.WriteString("  ")
		b.WriteString(styles.Text.Render(fmt.Sprintf("%-30s", name)))
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%-40s", cam.EntityID)))
		b.WriteString(stateStyle.Render(cam.State))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderTokenForm renders the Home Assistant token entry form.
func (m Model) renderTokenForm() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Home Assistant token"))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Paste a long-lived access token. The backend uses it to read camera snapshots."))
	b.WriteString("\n\n")
	b.WriteString(m.tokenInput.View())
	return b.String()
}
