package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type confirmFocus int

const (
	confirmFocusCancel confirmFocus = iota
	confirmFocusConfirm
)

// confirmState holds the pending destructive action behind the modal.
type confirmState struct {
	title  string
	body   string
	focus  confirmFocus
	spotID int64
}

// renderConfirmModal draws the delete confirmation over the whole screen.
// Borders inside the modal are avoided: some terminals show background
// artifacts when nesting bordered components inside a colored modal.
func (m Model) renderConfirmModal(c confirmState) string {
	styles := m.theme.Styles()

	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(m.theme.Text)).
		Background(lipgloss.Color(m.theme.SurfaceAlt))
	btnActive := btnBase.
		Foreground(lipgloss.Color(m.theme.SelectionText)).
		Background(lipgloss.Color(m.theme.SelectionBg)).
		Bold(true)

	confirm := btnBase.Render("Delete")
	cancel := btnBase.Render("Cancel")
	if c.focus == confirmFocusConfirm {
		confirm = btnActive.Render("Delete")
	} else {
		cancel = btnActive.Render("Cancel")
	}

	controls := lipgloss.JoinHorizontal(lipgloss.Top, cancel, " ", confirm)
	help := styles.FaintText.Render("tab: focus   enter: select   esc: cancel")

	content := strings.Join([]string{
		styles.Text.Bold(true).Render(c.title),
		"",
		styles.Text.Render(c.body),
		"",
		controls,
		"",
		help,
	}, "\n")

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2).
		Width(46)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
