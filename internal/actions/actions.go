// Package actions implements the spot lifecycle operations: each one calls
// the backend, interprets the structured result, reports the outcome, and
// refreshes the visible state. Failures stop at the action boundary; nothing
// propagates into other actions or global state.
package actions

import (
	"context"
	"fmt"

	"github.com/twinsync/spotctl/internal/notify"
	"github.com/twinsync/spotctl/internal/twinsync"
)

// Notifier receives action outcomes. *notify.Center satisfies it; a console
// printer does for the CLI.
type Notifier interface {
	Notify(message string, severity notify.Severity)
}

// Hooks are the optional view refresh callbacks, resolved once at
// initialization. On success the runner calls RefreshList when set, else
// RefreshDetail when set, else falls back to a full reload. A detail view
// sets only RefreshDetail; a list view sets RefreshList.
type Hooks struct {
	RefreshList   func()
	RefreshDetail func()
}

// Runner executes spot actions against the backend.
type Runner struct {
	api     twinsync.SpotAPI
	notes   Notifier
	hooks   Hooks
	confirm func(prompt string) bool
	reload  func()
}

// NewRunner builds a Runner. confirm guards Delete; a nil confirm declines
// every delete. reload is the lowest-priority refresh path and the
// destination after a delete.
func NewRunner(api twinsync.SpotAPI, notes Notifier, hooks Hooks, confirm func(string) bool, reload func()) *Runner {
	return &Runner{api: api, notes: notes, hooks: hooks, confirm: confirm, reload: reload}
}

// Check runs a vision check on one spot.
func (r *Runner) Check(ctx context.Context, id int64) {
	r.notify("Checking...", notify.Info)
	res, err := r.api.CheckSpot(ctx, id)
	if err != nil {
		r.fail("Check failed: ", err)
		return
	}
	switch {
	case res.ErrorMessage != "":
		r.notify(res.ErrorMessage, notify.Error)
	case res.Status == twinsync.StatusSorted:
		r.notify("Looking good!", notify.Success)
	default:
		r.notify(fmt.Sprintf("%d item(s) to sort", len(res.ToSort)), notify.Info)
	}
	r.refresh()
}

// Reset marks a spot as fixed and reports the new streak.
func (r *Runner) Reset(ctx context.Context, id int64) {
	res, err := r.api.ResetSpot(ctx, id)
	if err != nil {
		r.fail("Reset failed: ", err)
		return
	}
	r.notify(fmt.Sprintf("Spot reset. Streak: %d", res.NewStreak), notify.Success)
	r.refresh()
}

// Snooze pauses checks on a spot. Non-positive minutes uses the default
// snooze window.
func (r *Runner) Snooze(ctx context.Context, id int64, minutes int) {
	if minutes <= 0 {
		minutes = twinsync.DefaultSnoozeMinutes
	}
	if _, err := r.api.SnoozeSpot(ctx, id, minutes); err != nil {
		r.fail("Snooze failed: ", err)
		return
	}
	r.notify(fmt.Sprintf("Snoozed for %d minutes", minutes), notify.Success)
	r.refresh()
}

// Unsnooze cancels an active snooze.
func (r *Runner) Unsnooze(ctx context.Context, id int64) {
	if _, err := r.api.UnsnoozeSpot(ctx, id); err != nil {
		r.fail("Unsnooze failed: ", err)
		return
	}
	r.notify("Snooze cancelled", notify.Success)
	r.refresh()
}

// Delete removes a spot after explicit confirmation. Declining issues no
// network call. On success the runner returns to the root list via the full
// reload path rather than the refresh hooks, since the deleted spot's detail
// view no longer exists.
func (r *Runner) Delete(ctx context.Context, id int64) {
	if r.confirm == nil || !r.confirm("Delete this spot? This cannot be undone.") {
		return
	}
	if _, err := r.api.DeleteSpot(ctx, id); err != nil {
		r.fail("Delete failed: ", err)
		return
	}
	r.notify("Spot deleted", notify.Success)
	if r.reload != nil {
		r.reload()
	}
}

// CheckAll runs a check across every spot and summarizes the outcomes.
func (r *Runner) CheckAll(ctx context.Context) {
	r.notify("Checking all spots...", notify.Info)
	res, err := r.api.CheckAllSpots(ctx)
	if err != nil {
		r.fail("Check all failed: ", err)
		return
	}
	var sorted, attention int
	for _, entry := range res.Results {
		switch entry.Status {
		case twinsync.StatusSorted:
			sorted++
		case twinsync.StatusNeedsAttention:
			attention++
		}
	}
	r.notify(fmt.Sprintf("Done: %d sorted, %d need attention", sorted, attention), notify.Success)
	r.refresh()
}

func (r *Runner) notify(message string, severity notify.Severity) {
	if r.notes != nil {
		r.notes.Notify(message, severity)
	}
}

func (r *Runner) fail(prefix string, err error) {
	// One error toast per failure; the view is left untouched so the user
	// can re-trigger the action.
	r.notify(prefix+err.Error(), notify.Error)
}

func (r *Runner) refresh() {
	switch {
	case r.hooks.RefreshList != nil:
		r.hooks.RefreshList()
	case r.hooks.RefreshDetail != nil:
		r.hooks.RefreshDetail()
	case r.reload != nil:
		r.reload()
	}
}
