package ui

import (
	"testing"
	"time"

	"github.com/twinsync/spotctl/internal/twinsync"
)

func TestDisplayStatus(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		spot twinsync.Spot
		want string
	}{
		{
			name: "plain status passes through",
			spot: twinsync.Spot{Status: twinsync.StatusSorted},
			want: twinsync.StatusSorted,
		},
		{
			name: "active snooze overrides status",
			spot: twinsync.Spot{
				Status:       twinsync.StatusNeedsAttention,
				SnoozedUntil: now.Add(time.Hour).Format(time.RFC3339),
			},
			want: twinsync.StatusSnoozed,
		},
		{
			name: "expired snooze keeps status",
			spot: twinsync.Spot{
				Status:       twinsync.StatusNeedsAttention,
				SnoozedUntil: now.Add(-time.Hour).Format(time.RFC3339),
			},
			want: twinsync.StatusNeedsAttention,
		},
		{
			name: "empty status shows unknown",
			spot: twinsync.Spot{},
			want: twinsync.StatusUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayStatus(tt.spot, now); got != tt.want {
				t.Errorf("displayStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusLabel(t *testing.T) {
	if got := statusLabel(twinsync.StatusNeedsAttention); got != "attention" {
		t.Errorf("statusLabel(needs_attention) = %q", got)
	}
	if got := statusLabel("bogus"); got != "unknown" {
		t.Errorf("statusLabel(bogus) = %q", got)
	}
}
