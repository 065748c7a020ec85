package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/twinsync/spotctl/internal/actions"
	"github.com/twinsync/spotctl/internal/notify"
	"github.com/twinsync/spotctl/internal/prefs"
	"github.com/twinsync/spotctl/internal/state"
	"github.com/twinsync/spotctl/internal/twinsync"
)

// View represents the current active view.
type View int

const (
	ViewList View = iota
	ViewDetail
	ViewCameras
	ViewToken
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *twinsync.Client
	Store     *state.Store
	Refresh   func(context.Context) error
	PollTick  time.Duration
	Prefs     prefs.Prefs
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    *twinsync.Client
	store     *state.Store
	refresh   func(context.Context) error
	prefsPath string
	pollTick  time.Duration

	// UI state
	keys     keyMap
	theme    Theme
	nav      navModel
	notes    *notify.Center
	width    int
	height   int
	ready    bool
	view     View
	showHelp bool
	confirm  *confirmState

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time
	selectedRow int

	// Detail state
	detailID  int64
	detail    *twinsync.SpotDetail
	detailErr error

	// Cameras state
	cameras    []twinsync.Camera
	camerasErr error

	// Token state
	tokenInput textinput.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "Long-lived access token"
	input.EchoMode = textinput.EchoPassword
	input.CharLimit = 0

	themeName := ResolveThemeName(opts.Prefs.Theme, lipgloss.HasDarkBackground())

	m := Model{
		ctx:        ctx,
		client:     opts.Client,
		store:      opts.Store,
		refresh:    opts.Refresh,
		prefsPath:  prefsPath,
		pollTick:   pollTick,
		keys:       DefaultKeyMap(),
		theme:      GetTheme(themeName),
		nav:        newNavModel(opts.Prefs.NavCollapsed),
		notes:      notify.NewCenter(),
		view:       ViewList,
		tokenInput: input,
	}

	// A theme resolved by background detection is written back right away,
	// so the next run starts from an explicit stored preference.
	if opts.Prefs.Theme != themeName {
		m.savePrefs()
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.nav.applyWidth(msg.Width)
		m.ready = true
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		m.clampSelection()
		return m, nil

	case detailMsg:
		m.detail = msg.detail
		m.detailErr = msg.err
		if msg.err == nil && msg.detail != nil {
			m.detailID = msg.detail.Spot.ID
			m.view = ViewDetail
		}
		return m, nil

	case camerasMsg:
		m.cameras = msg.cameras
		m.camerasErr = msg.err
		return m, nil

	case actionDoneMsg:
		if m.store != nil {
			m.snapshot = m.store.Snapshot()
			m.clampSelection()
		}
		if msg.detail != nil || msg.detailErr != nil {
			m.detail = msg.detail
			m.detailErr = msg.detailErr
		}
		if msg.toList {
			m.view = ViewList
			m.detail = nil
			m.detailID = 0
		}
		return m, m.scheduleToastExpiry()

	case tokenSavedMsg:
		if msg.err != nil {
			m.notes.Notify("Token save failed: "+msg.err.Error(), notify.Error)
		} else if msg.result != nil && !msg.result.Success {
			m.notes.Notify(msg.result.Message, notify.Error)
		} else {
			m.notes.Notify("Token saved", notify.Success)
			m.view = ViewList
			m.tokenInput.Reset()
		}
		return m, m.scheduleToastExpiry()

	case toastExpireMsg:
		return m, m.scheduleToastExpiry()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.confirm != nil {
		return m.renderConfirmModal(*m.confirm)
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	contentHeight := m.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	switch m.view {
	case ViewDetail:
		content = m.renderDetail()
	case ViewCameras:
		content = m.renderCameras()
	case ViewToken:
		content = m.renderTokenForm()
	default:
		content = m.renderList(contentHeight)
	}

	if nav := m.renderNav(contentHeight); nav != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, nav, content)
	}
	b.WriteString(content)

	if toasts := m.renderToasts(); toasts != "" {
		b.WriteString("\n")
		b.WriteString(toasts)
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.view == ViewToken {
		return m.handleTokenKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleNav):
		m.nav.toggle()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ViewList), key.Matches(msg, m.keys.Escape):
		m.view = ViewList
		m.detail = nil
		m.detailID = 0
		return m, nil

	case key.Matches(msg, m.keys.ViewCameras):
		m.view = ViewCameras
		return m, loadCamerasCmd(m.ctx, m.client)

	case key.Matches(msg, m.keys.ViewToken):
		m.view = ViewToken
		m.tokenInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.CheckAll):
		return m, tea.Batch(m.actionCmd(func(r *actions.Runner) {
			r.CheckAll(m.ctx)
		}), m.scheduleToastSoon())
	}

	switch m.view {
	case ViewList:
		return m.handleListKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

// handleListKey processes keyboard input for the spot list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	spots := m.snapshot.Spots
	count := len(spots)

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		if count > 0 {
			m.selectedRow = count - 1
		}
	case key.Matches(msg, m.keys.Open):
		if spot := m.selectedSpot(); spot != nil {
			return m, loadDetailCmd(m.ctx, m.client, spot.ID)
		}
	default:
		if spot := m.selectedSpot(); spot != nil {
			return m.handleSpotActionKey(msg, spot.ID)
		}
	}
	return m, nil
}

// handleDetailKey processes keyboard input for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detailID == 0 {
		return m, nil
	}
	return m.handleSpotActionKey(msg, m.detailID)
}

// handleSpotActionKey maps action keys to runner commands for one spot.
func (m Model) handleSpotActionKey(msg tea.KeyMsg, id int64) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Check):
		return m, tea.Batch(m.actionCmd(func(r *actions.Runner) {
			r.Check(m.ctx, id)
		}), m.scheduleToastSoon())
	case key.Matches(msg, m.keys.Reset):
		return m, tea.Batch(m.actionCmd(func(r *actions.Runner) {
			r.Reset(m.ctx, id)
		}), m.scheduleToastSoon())
	case key.Matches(msg, m.keys.Snooze):
		return m, tea.Batch(m.actionCmd(func(r *actions.Runner) {
			r.Snooze(m.ctx, id, 0)
		}), m.scheduleToastSoon())
	case key.Matches(msg, m.keys.Unsnooze):
		return m, tea.Batch(m.actionCmd(func(r *actions.Runner) {
			r.Unsnooze(m.ctx, id)
		}), m.scheduleToastSoon())
	case key.Matches(msg, m.keys.Delete):
		name := m.spotName(id)
		m.confirm = &confirmState{
			title:  "Delete spot",
			body:   fmt.Sprintf("Delete %q? This cannot be undone.", name),
			spotID: id,
		}
		return m, nil
	}
	return m, nil
}

// handleConfirmKey drives the delete confirmation modal. Declining closes
// the modal without issuing any request.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.confirm
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "n":
		m.confirm = nil
		return m, nil
	case "tab", "left", "right":
		if c.focus == confirmFocusCancel {
			c.focus = confirmFocusConfirm
		} else {
			c.focus = confirmFocusCancel
		}
		return m, nil
	case "y":
		c.focus = confirmFocusConfirm
		fallthrough
	case "enter":
		if c.focus != confirmFocusConfirm {
			m.confirm = nil
			return m, nil
		}
		id := c.spotID
		m.confirm = nil
		return m, tea.Batch(m.actionCmd(func(r *actions.Runner) {
			r.Delete(m.ctx, id)
		}), m.scheduleToastSoon())
	}
	return m, nil
}

// handleTokenKey drives the HA token form.
func (m Model) handleTokenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = ViewList
		m.tokenInput.Blur()
		return m, nil
	case "enter":
		token := strings.TrimSpace(m.tokenInput.Value())
		if token == "" {
			return m, nil
		}
		return m, saveTokenCmd(m.ctx, m.client, token)
	}

	var cmd tea.Cmd
	m.tokenInput, cmd = m.tokenInput.Update(msg)
	return m, cmd
}

// actionCmd runs a spot action on the shared runner off the UI goroutine.
// The refresh hook matches the active view: the detail view refetches the
// open spot, the list view re-polls the store, and a full reload falls back
// to the list.
func (m Model) actionCmd(run func(r *actions.Runner)) tea.Cmd {
	ctx := m.ctx
	client := m.client
	refresh := m.refresh
	notes := m.notes

	detailID := int64(0)
	if m.view == ViewDetail {
		detailID = m.detailID
	}

	return func() tea.Msg {
		done := actionDoneMsg{}

		hooks := actions.Hooks{}
		if detailID != 0 {
			hooks.RefreshDetail = func() {
				done.detail, done.detailErr = client.GetSpot(ctx, detailID)
			}
		} else if refresh != nil {
			hooks.RefreshList = func() {
				_ = refresh(ctx)
			}
		}

		reload := func() {
			if refresh != nil {
				_ = refresh(ctx)
			}
			done.toList = true
		}

		// Confirmation already happened in the modal.
		r := actions.NewRunner(client, notes, hooks, func(string) bool { return true }, reload)
		run(r)
		return done
	}
}

// scheduleToastSoon repaints shortly after an action starts so its first
// toast shows before the action finishes.
func (m Model) scheduleToastSoon() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(time.Time) tea.Msg {
		return toastExpireMsg{}
	})
}

func (m *Model) clampSelection() {
	if n := len(m.snapshot.Spots); m.selectedRow >= n {
		m.selectedRow = n - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

func (m Model) selectedSpot() *twinsync.Spot {
	if m.selectedRow < 0 || m.selectedRow >= len(m.snapshot.Spots) {
		return nil
	}
	return &m.snapshot.Spots[m.selectedRow]
}

func (m Model) spotName(id int64) string {
	for _, s := range m.snapshot.Spots {
		if s.ID == id {
			return s.Name
		}
	}
	if m.detail != nil && m.detail.Spot.ID == id {
		return m.detail.Spot.Name
	}
	return fmt.Sprintf("spot %d", id)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:        m.theme.Name,
		NavCollapsed: !m.nav.expanded(),
	})
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type detailMsg struct {
	detail *twinsync.SpotDetail
	err    error
}

type camerasMsg struct {
	cameras []twinsync.Camera
	err     error
}

type actionDoneMsg struct {
	toList    bool
	detail    *twinsync.SpotDetail
	detailErr error
}

type tokenSavedMsg struct {
	result *twinsync.TokenResult
	err    error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func loadDetailCmd(ctx context.Context, client *twinsync.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		detail, err := client.GetSpot(ctx, id)
		return detailMsg{detail: detail, err: err}
	}
}

func loadCamerasCmd(ctx context.Context, client *twinsync.Client) tea.Cmd {
	return func() tea.Msg {
		cameras, err := client.ListCameras(ctx)
		return camerasMsg{cameras: cameras, err: err}
	}
}

func saveTokenCmd(ctx context.Context, client *twinsync.Client, token string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.SaveHAToken(ctx, token)
		return tokenSavedMsg{result: result, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	applyColorProfilePreference()
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
