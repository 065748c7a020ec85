// Package cli wires the cobra command tree for spotctl. Running the bare
// command starts the interactive TUI; subcommands expose the same spot
// actions for scripts.
package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/twinsync/spotctl/internal/app"
)

// App carries the persistent flags shared by every subcommand.
type App struct {
	ConfigPath string
	PrefsPath  string
	ServerURL  string
	PollEvery  int
}

// NewRootCmd builds the spotctl command tree.
func NewRootCmd() *cobra.Command {
	a := &App{}

	cmd := &cobra.Command{
		Use:          "spotctl",
		Short:        "Monitor and tidy TwinSync spots from the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return app.Run(ctx, a.options())
		},
	}

	cmd.PersistentFlags().StringVar(&a.ConfigPath, "config", "", "override config path")
	cmd.PersistentFlags().StringVar(&a.PrefsPath, "prefs", "", "override preferences path")
	cmd.PersistentFlags().StringVar(&a.ServerURL, "server", "", "override backend URL")
	cmd.PersistentFlags().IntVar(&a.PollEvery, "poll", 0, "refresh interval in seconds")

	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newShowCmd(a))
	cmd.AddCommand(newCheckCmd(a))
	cmd.AddCommand(newCheckAllCmd(a))
	cmd.AddCommand(newResetCmd(a))
	cmd.AddCommand(newSnoozeCmd(a))
	cmd.AddCommand(newUnsnoozeCmd(a))
	cmd.AddCommand(newDeleteCmd(a))
	cmd.AddCommand(newCamerasCmd(a))
	cmd.AddCommand(newHealthCmd(a))
	cmd.AddCommand(newTokenCmd(a))

	return cmd
}

func (a *App) options() app.Options {
	return app.Options{
		ConfigPath: a.ConfigPath,
		PrefsPath:  a.PrefsPath,
		ServerURL:  a.ServerURL,
		PollEvery:  a.PollEvery,
	}
}

// setup builds the wired application without starting the TUI.
func (a *App) setup() (*app.App, error) {
	return app.Setup(a.options())
}
