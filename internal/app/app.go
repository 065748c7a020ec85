package app

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/twinsync/spotctl/internal/config"
	"github.com/twinsync/spotctl/internal/ingress"
	"github.com/twinsync/spotctl/internal/prefs"
	"github.com/twinsync/spotctl/internal/state"
	"github.com/twinsync/spotctl/internal/twinsync"
	"github.com/twinsync/spotctl/internal/ui"
)

// ingressEnv, when set, takes priority over the configured ingress path.
// The Home Assistant supervisor injects it into the add-on environment.
const ingressEnv = "SPOTCTL_INGRESS_PATH"

// Options configure the spotctl application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/spotctl/prefs.toml
	ServerURL  string // overrides the configured server URL
	PollEvery  int    // seconds; zero uses the configured interval
}

// App holds the wired-up pieces shared by the TUI and the CLI.
type App struct {
	Client    *twinsync.Client
	Store     *state.Store
	Config    config.Config
	Prefs     prefs.Prefs
	Interval  time.Duration
	PrefsPath string
}

// Setup loads configuration and preferences, resolves the ingress prefix,
// and constructs the API client and snapshot store.
func Setup(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if opts.ServerURL != "" {
		cfg.ServerURL = opts.ServerURL
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return nil, fmt.Errorf("load prefs: %w", err)
	}

	injected := os.Getenv(ingressEnv)
	if injected == "" {
		injected = cfg.IngressPath
	}
	basePath := ingress.Resolve(injected, serverURLPath(cfg.ServerURL))

	client, err := twinsync.NewClient(cfg.ServerURL, basePath, cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("init twinsync client: %w", err)
	}

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	return &App{
		Client:    client,
		Store:     &state.Store{},
		Config:    cfg,
		Prefs:     userPrefs,
		Interval:  interval,
		PrefsPath: opts.PrefsPath,
	}, nil
}

// Refresh fetches the spot list once and records the outcome in the store.
func (a *App) Refresh(ctx context.Context) error {
	spots, err := a.Client.ListSpots(ctx)
	if err != nil {
		a.Store.Update(nil, err)
		return err
	}
	a.Store.Update(spots, nil)
	return nil
}

// Run boots the spotctl TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	a, err := Setup(opts)
	if err != nil {
		return err
	}

	// Populate the store before the UI starts so the first frame has data.
	_ = a.Refresh(ctx)

	a.StartPoller(ctx)

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    a.Client,
		Store:     a.Store,
		Refresh:   a.Refresh,
		PollTick:  a.Interval,
		Prefs:     a.Prefs,
		PrefsPath: a.PrefsPath,
	})
}

// serverURLPath extracts the path component of a server URL so an ingress
// prefix embedded in the URL itself can be recognized.
func serverURLPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Path
}
