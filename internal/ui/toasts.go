package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/twinsync/spotctl/internal/notify"
)

type toastExpireMsg struct{}

// scheduleToastExpiry returns a command that wakes the UI when the next
// toast lapses, so stale toasts disappear without user input.
func (m Model) scheduleToastExpiry() tea.Cmd {
	next := m.notes.NextExpiry(time.Now())
	if next.IsZero() {
		return nil
	}
	wait := time.Until(next)
	if wait < 0 {
		wait = 0
	}
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return toastExpireMsg{}
	})
}

// renderToasts stacks active toasts newest-last, matching arrival order.
func (m Model) renderToasts() string {
	active := m.notes.Active(time.Now())
	if len(active) == 0 {
		return ""
	}

	styles := m.theme.Styles()
	rendered := make([]string, 0, len(active))
	for _, toast := range active {
		var st lipgloss.Style
		switch toast.Severity {
		case notify.Success:
			st = styles.SuccessText
		case notify.Error:
			st = styles.DangerText
		default:
			st = styles.InfoText
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(m.theme.Border)).
			Padding(0, 1)
		rendered = append(rendered, box.Render(st.Render(toast.Message)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
