package actions

import (
	"context"
	"strings"
	"testing"

	"github.com/twinsync/spotctl/internal/notify"
	"github.com/twinsync/spotctl/internal/twinsync"
)

// fakeAPI records calls and returns canned payloads or an error.
type fakeAPI struct {
	calls []string

	checkResult  *twinsync.CheckResult
	resetResult  *twinsync.ResetResult
	checkAll     *twinsync.CheckAllResponse
	snoozeResult *twinsync.SnoozeResult
	err          error

	snoozeMinutes int
}

func (f *fakeAPI) ListSpots(ctx context.Context) ([]twinsync.Spot, error) {
	f.calls = append(f.calls, "list")
	return nil, f.err
}

func (f *fakeAPI) GetSpot(ctx context.Context, id int64) (*twinsync.SpotDetail, error) {
	f.calls = append(f.calls, "get")
	return nil, f.err
}

func (f *fakeAPI) CheckSpot(ctx context.Context, id int64) (*twinsync.CheckResult, error) {
	f.calls = append(f.calls, "check")
	if f.err != nil {
		return nil, f.err
	}
	return f.checkResult, nil
}

func (f *fakeAPI) ResetSpot(ctx context.Context, id int64) (*twinsync.ResetResult, error) {
	f.calls = append(f.calls, "reset")
	if f.err != nil {
		return nil, f.err
	}
	return f.resetResult, nil
}

func (f *fakeAPI) SnoozeSpot(ctx context.Context, id int64, minutes int) (*twinsync.SnoozeResult, error) {
	f.calls = append(f.calls, "snooze")
	f.snoozeMinutes = minutes
	if f.err != nil {
		return nil, f.err
	}
	if f.snoozeResult != nil {
		return f.snoozeResult, nil
	}
	return &twinsync.SnoozeResult{}, nil
}

func (f *fakeAPI) UnsnoozeSpot(ctx context.Context, id int64) (*twinsync.MessageResult, error) {
	f.calls = append(f.calls, "unsnooze")
	if f.err != nil {
		return nil, f.err
	}
	return &twinsync.MessageResult{Message: "Snooze cancelled"}, nil
}

func (f *fakeAPI) DeleteSpot(ctx context.Context, id int64) (*twinsync.MessageResult, error) {
	f.calls = append(f.calls, "delete")
	if f.err != nil {
		return nil, f.err
	}
	return &twinsync.MessageResult{Message: "Spot deleted"}, nil
}

func (f *fakeAPI) CheckAllSpots(ctx context.Context) (*twinsync.CheckAllResponse, error) {
	f.calls = append(f.calls, "check-all")
	if f.err != nil {
		return nil, f.err
	}
	return f.checkAll, nil
}

// recordingNotifier captures toasts in order.
type recordingNotifier struct {
	messages   []string
	severities []notify.Severity
}

func (n *recordingNotifier) Notify(message string, severity notify.Severity) {
	n.messages = append(n.messages, message)
	n.severities = append(n.severities, severity)
}

func (n *recordingNotifier) last() (string, notify.Severity) {
	if len(n.messages) == 0 {
		return "", notify.Info
	}
	return n.messages[len(n.messages)-1], n.severities[len(n.messages)-1]
}

type refreshLog struct {
	list, detail, reload int
}

func newRunner(api *fakeAPI, n Notifier, log *refreshLog, withList, withDetail bool, confirm func(string) bool) *Runner {
	hooks := Hooks{}
	if withList {
		hooks.RefreshList = func() { log.list++ }
	}
	if withDetail {
		hooks.RefreshDetail = func() { log.detail++ }
	}
	return NewRunner(api, n, hooks, confirm, func() { log.reload++ })
}

func TestCheck_OutcomeBranches(t *testing.T) {
	tests := []struct {
		name    string
		result  *twinsync.CheckResult
		wantMsg string
		wantSev notify.Severity
	}{
		{
			name:    "sorted",
			result:  &twinsync.CheckResult{Status: twinsync.StatusSorted},
			wantMsg: "Looking good!",
			wantSev: notify.Success,
		},
		{
			name:    "needs attention with three items",
			result:  &twinsync.CheckResult{Status: twinsync.StatusNeedsAttention, ToSort: []string{"mug", "papers", "cables"}},
			wantMsg: "3 item(s) to sort",
			wantSev: notify.Info,
		},
		{
			name:    "no status match and absent to_sort",
			result:  &twinsync.CheckResult{Status: "skipped"},
			wantMsg: "0 item(s) to sort",
			wantSev: notify.Info,
		},
		{
			name:    "backend error message",
			result:  &twinsync.CheckResult{ErrorMessage: "Failed to get camera snapshot"},
			wantMsg: "Failed to get camera snapshot",
			wantSev: notify.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{checkResult: tt.result}
			n := &recordingNotifier{}
			log := &refreshLog{}
			r := newRunner(api, n, log, true, false, nil)

			r.Check(context.Background(), 1)

			if n.messages[0] != "Checking..." {
				t.Errorf("start toast = %q, want Checking...", n.messages[0])
			}
			msg, sev := n.last()
			if msg != tt.wantMsg || sev != tt.wantSev {
				t.Errorf("outcome toast = %q/%v, want %q/%v", msg, sev, tt.wantMsg, tt.wantSev)
			}
			if log.list != 1 {
				t.Errorf("list refreshes = %d, want 1", log.list)
			}
		})
	}
}

func TestCheck_APIFailureSkipsRefresh(t *testing.T) {
	api := &fakeAPI{err: &twinsync.APIError{Status: 503, Message: "HTTP 503"}}
	n := &recordingNotifier{}
	log := &refreshLog{}
	r := newRunner(api, n, log, true, true, nil)

	r.Check(context.Background(), 1)

	msg, sev := n.last()
	if msg != "Check failed: HTTP 503" || sev != notify.Error {
		t.Fatalf("failure toast = %q/%v, want prefixed error", msg, sev)
	}
	if log.list != 0 || log.detail != 0 || log.reload != 0 {
		t.Fatalf("refresh on failure: %+v, want none", *log)
	}
}

func TestRefreshPolicy_Precedence(t *testing.T) {
	run := func(withList, withDetail bool) refreshLog {
		api := &fakeAPI{checkResult: &twinsync.CheckResult{Status: twinsync.StatusSorted}}
		log := &refreshLog{}
		r := newRunner(api, &recordingNotifier{}, log, withList, withDetail, nil)
		r.Check(context.Background(), 1)
		return *log
	}

	if got := run(true, true); got.list != 1 || got.detail != 0 || got.reload != 0 {
		t.Errorf("list hook should win: %+v", got)
	}
	if got := run(false, true); got.detail != 1 || got.reload != 0 {
		t.Errorf("detail hook should be second: %+v", got)
	}
	if got := run(false, false); got.reload != 1 {
		t.Errorf("full reload should be the fallback: %+v", got)
	}
}

func TestReset_IncludesNewStreak(t *testing.T) {
	api := &fakeAPI{resetResult: &twinsync.ResetResult{Status: twinsync.StatusSorted, NewStreak: 7}}
	n := &recordingNotifier{}
	r := newRunner(api, n, &refreshLog{}, true, false, nil)

	r.Reset(context.Background(), 3)

	msg, sev := n.last()
	if sev != notify.Success || !strings.Contains(msg, "7") {
		t.Fatalf("reset toast = %q/%v, want success with streak 7", msg, sev)
	}
}

func TestSnooze_DefaultAndExplicitMinutes(t *testing.T) {
	api := &fakeAPI{}
	n := &recordingNotifier{}
	r := newRunner(api, n, &refreshLog{}, true, false, nil)

	r.Snooze(context.Background(), 3, 0)
	if api.snoozeMinutes != twinsync.DefaultSnoozeMinutes {
		t.Errorf("default minutes = %d, want %d", api.snoozeMinutes, twinsync.DefaultSnoozeMinutes)
	}
	if msg, _ := n.last(); !strings.Contains(msg, "30") {
		t.Errorf("snooze toast = %q, want minutes included", msg)
	}

	r.Snooze(context.Background(), 3, 5)
	if api.snoozeMinutes != 5 {
		t.Errorf("explicit minutes = %d, want 5", api.snoozeMinutes)
	}
}

func TestDelete_DecliningIssuesNoCall(t *testing.T) {
	api := &fakeAPI{}
	n := &recordingNotifier{}
	log := &refreshLog{}
	r := newRunner(api, n, log, true, false, func(string) bool { return false })

	r.Delete(context.Background(), 3)

	if len(api.calls) != 0 {
		t.Fatalf("calls = %v, want none when declined", api.calls)
	}
	if len(n.messages) != 0 {
		t.Fatalf("toasts = %v, want none when declined", n.messages)
	}
	if log.reload != 0 {
		t.Fatalf("reload on decline: %d, want 0", log.reload)
	}
}

func TestDelete_NilConfirmDeclines(t *testing.T) {
	api := &fakeAPI{}
	r := newRunner(api, &recordingNotifier{}, &refreshLog{}, true, false, nil)

	r.Delete(context.Background(), 3)

	if len(api.calls) != 0 {
		t.Fatalf("calls = %v, want none without a confirmer", api.calls)
	}
}

func TestDelete_SuccessNavigatesToRoot(t *testing.T) {
	api := &fakeAPI{}
	n := &recordingNotifier{}
	log := &refreshLog{}
	r := newRunner(api, n, log, true, true, func(string) bool { return true })

	r.Delete(context.Background(), 3)

	if len(api.calls) != 1 || api.calls[0] != "delete" {
		t.Fatalf("calls = %v, want single delete", api.calls)
	}
	// Delete bypasses the refresh hooks and goes straight to the reload path.
	if log.list != 0 || log.detail != 0 || log.reload != 1 {
		t.Fatalf("refresh after delete = %+v, want reload only", *log)
	}
	msg, sev := n.last()
	if sev != notify.Success || msg != "Spot deleted" {
		t.Fatalf("delete toast = %q/%v", msg, sev)
	}
}

func TestCheckAll_CountsOutcomes(t *testing.T) {
	api := &fakeAPI{checkAll: &twinsync.CheckAllResponse{Results: []twinsync.CheckAllEntry{
		{SpotID: 1, Status: twinsync.StatusSorted},
		{SpotID: 2, Status: twinsync.StatusNeedsAttention, ToSortCount: 2},
		{SpotID: 3, Status: twinsync.StatusSorted},
		{SpotID: 4, Status: "snoozed"},
	}}}
	n := &recordingNotifier{}
	log := &refreshLog{}
	r := newRunner(api, n, log, true, false, nil)

	r.CheckAll(context.Background())

	if n.messages[0] != "Checking all spots..." {
		t.Errorf("start toast = %q", n.messages[0])
	}
	msg, sev := n.last()
	if sev != notify.Success || msg != "Done: 2 sorted, 1 need attention" {
		t.Fatalf("summary toast = %q/%v", msg, sev)
	}
	if log.list != 1 {
		t.Fatalf("refresh after check-all = %+v, want list refresh", *log)
	}
}

func TestCheckAll_FailurePrefix(t *testing.T) {
	api := &fakeAPI{err: &twinsync.APIError{Status: 500, Message: "backend exploded"}}
	n := &recordingNotifier{}
	log := &refreshLog{}
	r := newRunner(api, n, log, true, false, nil)

	r.CheckAll(context.Background())

	msg, sev := n.last()
	if msg != "Check all failed: backend exploded" || sev != notify.Error {
		t.Fatalf("failure toast = %q/%v", msg, sev)
	}
	if log.list != 0 {
		t.Fatalf("refresh on failure: %+v", *log)
	}
}
