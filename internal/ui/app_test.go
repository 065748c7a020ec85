package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/twinsync/spotctl/internal/prefs"
	"github.com/twinsync/spotctl/internal/twinsync"
)

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, p prefs.Prefs) Model {
	t.Helper()
	m := New(Options{Prefs: p, PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	m.ready = true
	m.width = 100
	m.height = 40
	return m
}

func TestNew_PersistsDetectionResolvedTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	New(Options{PrefsPath: path})

	saved, err := prefs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !prefs.ValidTheme(saved.Theme) {
		t.Fatalf("saved theme = %q, want a valid theme name", saved.Theme)
	}
}

func TestNew_KeepsStoredTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{Prefs: prefs.Prefs{Theme: prefs.ThemeDark}, PrefsPath: path})
	if m.theme.Name != prefs.ThemeDark {
		t.Fatalf("theme = %q, want %q", m.theme.Name, prefs.ThemeDark)
	}
}

func TestHandleKey_QuitBinding(t *testing.T) {
	m := newTestModel(t, prefs.Prefs{Theme: prefs.ThemeLight})

	_, cmd := m.Update(keyPress("Q"))
	if cmd == nil {
		t.Fatal("Q produced no command, want quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("Q should quit the program")
	}
}

func TestHandleKey_CycleThemeBindingPersists(t *testing.T) {
	m := newTestModel(t, prefs.Prefs{Theme: prefs.ThemeLight})

	updated, _ := m.Update(keyPress("T"))
	got := updated.(Model)
	if got.theme.Name != prefs.ThemeDark {
		t.Fatalf("theme after T = %q, want %q", got.theme.Name, prefs.ThemeDark)
	}

	saved, err := prefs.Load(got.prefsPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if saved.Theme != prefs.ThemeDark {
		t.Fatalf("saved theme = %q, want %q", saved.Theme, prefs.ThemeDark)
	}
}

func TestHandleKey_ToggleNavBindingInNarrowRegime(t *testing.T) {
	m := newTestModel(t, prefs.Prefs{Theme: prefs.ThemeLight})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	got := updated.(Model)
	if got.nav.expanded() {
		t.Fatal("nav should collapse at 80 columns")
	}

	updated, _ = got.Update(keyPress("m"))
	got = updated.(Model)
	if !got.nav.expanded() {
		t.Fatal("m should open the nav in the narrow regime")
	}
}

func TestHandleKey_ListNavigationBindings(t *testing.T) {
	m := newTestModel(t, prefs.Prefs{Theme: prefs.ThemeLight})
	m.snapshot.Spots = []twinsync.Spot{
		{ID: 1, Name: "desk"},
		{ID: 2, Name: "counter"},
		{ID: 3, Name: "entryway"},
	}

	step := func(mm Model, k string) Model {
		updated, _ := mm.Update(keyPress(k))
		return updated.(Model)
	}

	m = step(m, "j")
	m = step(m, "j")
	if m.selectedRow != 2 {
		t.Fatalf("selectedRow after jj = %d, want 2", m.selectedRow)
	}
	m = step(m, "k")
	if m.selectedRow != 1 {
		t.Fatalf("selectedRow after k = %d, want 1", m.selectedRow)
	}
	m = step(m, "G")
	if m.selectedRow != 2 {
		t.Fatalf("selectedRow after G = %d, want 2", m.selectedRow)
	}
	m = step(m, "g")
	if m.selectedRow != 0 {
		t.Fatalf("selectedRow after g = %d, want 0", m.selectedRow)
	}
}

func TestHandleKey_HelpBindingOpensKeyMapOverlay(t *testing.T) {
	m := newTestModel(t, prefs.Prefs{Theme: prefs.ThemeLight})

	updated, _ := m.Update(keyPress("?"))
	got := updated.(Model)
	if !got.showHelp {
		t.Fatal("? should open the help overlay")
	}

	view := got.View()
	for _, want := range []string{"Keyboard Shortcuts", "check all spots", "delete spot", "toggle theme"} {
		if !strings.Contains(view, want) {
			t.Errorf("help overlay missing %q", want)
		}
	}
}
