package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/twinsync/spotctl/internal/twinsync"
)

// statusLabel maps API statuses to display text.
func statusLabel(status string) string {
	switch status {
	case twinsync.StatusSorted:
		return "sorted"
	case twinsync.StatusNeedsAttention:
		return "attention"
	case twinsync.StatusSnoozed:
		return "snoozed"
	default:
		return "unknown"
	}
}

// renderList renders the spot table.
func (m Model) renderList(height int) string {
	styles := m.theme.Styles()
	spots := m.snapshot.Spots

	if len(spots) == 0 {
		if m.snapshot.LastError != nil {
			return styles.DangerText.Render("Backend unreachable: ") +
				styles.MutedText.Render(m.snapshot.LastError.Error())
		}
		return styles.MutedText.Render("No spots yet. Add one from the TwinSync add-on.")
	}

	var b strings.Builder
	now := time.Now()

	for i, spot := range spots {
		badge := styles.StatusStyle(displayStatus(spot, now)).Render(statusLabel(displayStatus(spot, now)))

		name := spot.Name
		if name == "" {
			name = fmt.Sprintf("spot %d", spot.ID)
		}

		streak := styles.MutedText.Render(fmt.Sprintf("streak %d", spot.CurrentStreak))

		last := ""
		if t := spot.ParsedLastCheck(); !t.IsZero() {
			last = styles.FaintText.Render(relativeTime(t))
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			badge, " ",
			lipgloss.NewStyle().Width(28).Render(name), " ",
			lipgloss.NewStyle().Width(12).Render(streak), " ",
			last,
		)

		if i == m.selectedRow {
			row = styles.Selected.Render("> ") + row
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	out := strings.TrimRight(b.String(), "\n")
	return lipgloss.NewStyle().MaxHeight(height).Render(out)
}

// displayStatus folds an active snooze into the shown status so a spot
// snoozed after a check doesn't keep its stale badge.
func displayStatus(spot twinsync.Spot, now time.Time) string {
	if spot.IsSnoozed(now) {
		return twinsync.StatusSnoozed
	}
	if spot.Status == "" {
		return twinsync.StatusUnknown
	}
	return spot.Status
}
