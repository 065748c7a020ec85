package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/twinsync/spotctl/internal/actions"
	"github.com/twinsync/spotctl/internal/notify"
	"github.com/twinsync/spotctl/internal/twinsync"
)

// consoleNotifier prints action toasts as plain lines for scripts. Error
// toasts are recorded instead of printed, so the command can return them
// and exit non-zero.
type consoleNotifier struct {
	w   io.Writer
	err error
}

func (n *consoleNotifier) Notify(message string, severity notify.Severity) {
	if severity == notify.Error {
		n.err = errors.New(message)
		return
	}
	if severity == notify.Info {
		fmt.Fprintln(n.w, message)
		return
	}
	fmt.Fprintf(n.w, "%s: %s\n", severity, message)
}

// newRunner builds an action runner for one-shot CLI use. Refresh hooks are
// left empty; each command exits after the action completes.
func newRunner(api twinsync.SpotAPI, out io.Writer, confirm func(string) bool) (*actions.Runner, *consoleNotifier) {
	n := &consoleNotifier{w: out}
	return actions.NewRunner(api, n, actions.Hooks{}, confirm, nil), n
}

func parseSpotID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid spot id %q", arg)
	}
	return id, nil
}

// stdinConfirm prompts on the command's input stream and accepts y/yes.
func stdinConfirm(cmd *cobra.Command) func(string) bool {
	return func(prompt string) bool {
		fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

func newListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List spots and their status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ap, err := a.setup()
			if err != nil {
				return err
			}
			spots, err := ap.Client.ListSpots(cmd.Context())
			if err != nil {
				return err
			}
			if len(spots) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no spots")
				return nil
			}
			w := cmd.OutOrStdout()
			now := time.Now()
			for _, s := range spots {
				status := s.Status
				if s.IsSnoozed(now) {
					status = twinsync.StatusSnoozed
				}
				fmt.Fprintf(w, "%-4d %-28s %-16s streak %d\n", s.ID, s.Name, status, s.CurrentStreak)
			}
			return nil
		},
	}
}

func newShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <spot-id>",
		Short: "Show one spot with its learned patterns and history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSpotID(args[0])
			if err != nil {
				return err
			}
			ap, err := a.setup()
			if err != nil {
				return err
			}
			detail, err := ap.Client.GetSpot(cmd.Context(), id)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			spot := detail.Spot
			fmt.Fprintf(w, "%s (#%d)\n", spot.Name, spot.ID)
			fmt.Fprintf(w, "  status:  %s\n", spot.Status)
			fmt.Fprintf(w, "  camera:  %s\n", spot.CameraEntity)
			fmt.Fprintf(w, "  streak:  %d (best %d)\n", spot.CurrentStreak, spot.LongestStreak)
			if spot.LastCheck != "" {
				fmt.Fprintf(w, "  checked: %s\n", spot.LastCheck)
			}
			if items := detail.Memory.Patterns.RecurringItems; len(items) > 0 {
				fmt.Fprintf(w, "  recurring: %s\n", strings.Join(items, ", "))
			}
			for _, check := range detail.RecentChecks {
				line := fmt.Sprintf("  %s  %s", check.Timestamp, check.Status)
				if len(check.ToSort) > 0 {
					line += "  " + strings.Join(check.ToSort, ", ")
				}
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}
}

func newCheckCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <spot-id>",
		Short: "Run a vision check on one spot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSpotID(args[0])
			if err != nil {
				return err
			}
			ap, err := a.setup()
			if err != nil {
				return err
			}
			r, n := newRunner(ap.Client, cmd.OutOrStdout(), nil)
			r.Check(cmd.Context(), id)
			return n.err
		},
	}
}

func newCheckAllCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check-all",
		Short: "Run a vision check on every spot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ap, err := a.setup()
			if err != nil {
				return err
			}
			r, n := newRunner(ap.Client, cmd.OutOrStdout(), nil)
			r.CheckAll(cmd.Context())
			return n.err
		},
	}
}

func newResetCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <spot-id>",
		Short: "Mark a spot as sorted and extend its streak",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSpotID(args[0])
			if err != nil {
				return err
			}
			ap, err := a.setup()
			if err != nil {
				return err
			}
			r, n := newRunner(ap.Client, cmd.OutOrStdout(), nil)
			r.Reset(cmd.Context(), id)
			return n.err
		},
	}
}

func newSnoozeCmd(a *App) *cobra.Command {
	var minutes int
	cmd := &cobra.Command{
		Use:   "snooze <spot-id>",
		Short: "Pause checks on a spot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSpotID(args[0])
			if err != nil {
				return err
			}
			ap, err := a.setup()
			if err != nil {
				return err
			}
			r, n := newRunner(ap.Client, cmd.OutOrStdout(), nil)
			r.Snooze(cmd.Context(), id, minutes)
			return n.err
		},
	}
	cmd.Flags().IntVar(&minutes, "minutes", 0, "snooze duration (default 30)")
	return cmd
}

func newUnsnoozeCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unsnooze <spot-id>",
		Short: "Cancel an active snooze",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSpotID(args[0])
			if err != nil {
				return err
			}
			ap, err := a.setup()
			if err != nil {
				return err
			}
			r, n := newRunner(ap.Client, cmd.OutOrStdout(), nil)
			r.Unsnooze(cmd.Context(), id)
			return n.err
		},
	}
}

func newDeleteCmd(a *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <spot-id>",
		Short: "Delete a spot and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSpotID(args[0])
			if err != nil {
				return err
			}
			ap, err := a.setup()
			if err != nil {
				return err
			}
			confirm := stdinConfirm(cmd)
			if yes {
				confirm = func(string) bool { return true }
			}
			r, n := newRunner(ap.Client, cmd.OutOrStdout(), confirm)
			r.Delete(cmd.Context(), id)
			return n.err
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newCamerasCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cameras",
		Short: "List Home Assistant camera entities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ap, err := a.setup()
			if err != nil {
				return err
			}
			cameras, err := ap.Client.ListCameras(cmd.Context())
			if err != nil {
				return err
			}
			if len(cameras) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no cameras")
				return nil
			}
			for _, cam := range cameras {
				fmt.Fprintf(cmd.OutOrStdout(), "%-40s %-24s %s\n", cam.EntityID, cam.Name, cam.State)
			}
			return nil
		},
	}
}

func newHealthCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the backend health endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ap, err := a.setup()
			if err != nil {
				return err
			}
			h, err := ap.Client.Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (version %s)\n", h.Status, h.Version)
			return nil
		},
	}
}

func newTokenCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the Home Assistant access token",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <token>",
		Short: "Save a long-lived access token on the backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := strings.TrimSpace(args[0])
			if token == "" {
				return fmt.Errorf("token is empty")
			}
			ap, err := a.setup()
			if err != nil {
				return err
			}
			result, err := ap.Client.SaveHAToken(cmd.Context(), token)
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("token rejected: %s", result.Message)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	})
	return cmd
}
