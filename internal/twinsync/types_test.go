package twinsync

import (
	"testing"
	"time"
)

func TestSpot_IsSnoozed(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		until string
		want  bool
	}{
		{"future snooze", "2026-03-01T12:30:00Z", true},
		{"expired snooze", "2026-03-01T11:00:00Z", false},
		{"no snooze", "", false},
		{"unparseable value", "not-a-time", false},
		{"backend naive timestamp", "2026-03-01T12:30:00.123456", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Spot{SnoozedUntil: tt.until}
			if got := s.IsSnoozed(now); got != tt.want {
				t.Errorf("IsSnoozed(%q) = %v, want %v", tt.until, got, tt.want)
			}
		})
	}
}

func TestParseTime_Layouts(t *testing.T) {
	if got := parseTime("2026-03-01T12:30:00Z"); got.IsZero() {
		t.Error("RFC3339 timestamp did not parse")
	}
	if got := parseTime("2026-03-01T12:30:00.123456"); got.IsZero() {
		t.Error("fractional naive timestamp did not parse")
	}
	if got := parseTime(""); !got.IsZero() {
		t.Errorf("empty value parsed to %v, want zero", got)
	}
}
