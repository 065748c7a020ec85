package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// navBreakpoint is the terminal width below which the sidebar collapses.
const navBreakpoint = 90

// navWidth is the rendered width of the expanded sidebar.
const navWidth = 18

// navModel tracks the collapsible sidebar. The sidebar is only collapsible
// in the narrow regime: above the breakpoint it is forced open and the
// toggle is ignored. Entering the narrow regime applies the collapsed
// default once per model lifetime; after that, resizes within the narrow
// range keep whatever state the user chose.
type navModel struct {
	collapsed  bool
	width      int
	narrowInit bool
}

func newNavModel(collapsed bool) navModel {
	return navModel{collapsed: collapsed}
}

// applyWidth records a new terminal width and updates the collapsed state.
func (n *navModel) applyWidth(w int) {
	n.width = w

	if w >= navBreakpoint {
		n.collapsed = false
		return
	}

	if !n.narrowInit {
		n.narrowInit = true
		n.collapsed = true
	}
}

// toggle flips the collapsed state. No-op above the breakpoint, where the
// sidebar is always shown.
func (n *navModel) toggle() {
	if n.width >= navBreakpoint {
		return
	}
	n.collapsed = !n.collapsed
}

// expanded reports whether the sidebar is currently shown.
func (n navModel) expanded() bool {
	return !n.collapsed
}

// navEntry is one sidebar destination.
type navEntry struct {
	key   string
	label string
	view  View
}

var navEntries = []navEntry{
	{"q", "Spots", ViewList},
	{"v", "Cameras", ViewCameras},
	{"t", "HA Token", ViewToken},
}

// renderNav renders the sidebar for the given height. Empty when collapsed.
func (m Model) renderNav(height int) string {
	if !m.nav.expanded() {
		return ""
	}

	styles := m.theme.Styles()
	var b strings.Builder
	for _, e := range navEntries {
		line := " " + e.key + "  " + e.label
		if e.view == m.view {
			b.WriteString(styles.Selected.Width(navWidth - 1).Render(line))
		} else {
			b.WriteString(styles.MutedText.Render(line))
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Width(navWidth).
		Height(height).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Render(b.String())
}
