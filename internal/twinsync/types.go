package twinsync

import (
	"time"
)

// Spot statuses reported by the backend.
const (
	StatusSorted         = "sorted"
	StatusNeedsAttention = "needs_attention"
	StatusSnoozed        = "snoozed"
	StatusUnknown        = "unknown"
)

// Spot describes a monitored location as returned by /api/spots.
type Spot struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	CameraEntity        string `json:"camera_entity"`
	Definition          string `json:"definition"`
	SpotType            string `json:"spot_type"`
	Status              string `json:"status"`
	LastCheck           string `json:"last_check"`
	CurrentStreak       int    `json:"current_streak"`
	LongestStreak       int    `json:"longest_streak"`
	SnoozedUntil        string `json:"snoozed_until"`
	RecurringItemsCount int    `json:"recurring_items_count"`
	TotalChecks         int    `json:"total_checks"`
}

// IsSnoozed reports whether the spot's snooze window covers now.
func (s Spot) IsSnoozed(now time.Time) bool {
	until := parseTime(s.SnoozedUntil)
	return !until.IsZero() && until.After(now)
}

// ParsedLastCheck returns the last check timestamp when parseable.
func (s Spot) ParsedLastCheck() time.Time {
	return parseTime(s.LastCheck)
}

// SpotListResponse mirrors GET /api/spots.
type SpotListResponse struct {
	Spots []Spot `json:"spots"`
}

// SpotDetail mirrors GET /api/spots/{id}: the spot plus its memory summary
// and recent check history.
type SpotDetail struct {
	Spot         Spot          `json:"spot"`
	Memory       SpotMemory    `json:"memory"`
	RecentChecks []RecentCheck `json:"recent_checks"`
}

// SpotMemory summarizes what the backend has learned about a spot.
type SpotMemory struct {
	TotalChecks int          `json:"total_checks"`
	Patterns    SpotPatterns `json:"patterns"`
}

// SpotPatterns carries recurring-clutter observations for display.
type SpotPatterns struct {
	RecurringItems  []string `json:"recurring_items"`
	WorstDay        string   `json:"worst_day"`
	BestDay         string   `json:"best_day"`
	UsuallySortedBy string   `json:"usually_sorted_by"`
}

// RecentCheck is one row of a spot's check history.
type RecentCheck struct {
	ID        int64    `json:"id"`
	Timestamp string   `json:"timestamp"`
	Status    string   `json:"status"`
	ToSort    []string `json:"to_sort"`
	Notes     string   `json:"notes"`
}

// CheckResult mirrors POST /api/spots/{id}/check. A check can succeed at the
// HTTP level yet carry a backend-side failure in ErrorMessage; callers must
// branch on the structured fields, not just the error return.
type CheckResult struct {
	CheckID      *int64            `json:"check_id"`
	Status       string            `json:"status"`
	ToSort       []string          `json:"to_sort"`
	LookingGood  []string          `json:"looking_good"`
	Notes        map[string]string `json:"notes"`
	ErrorMessage string            `json:"error_message"`
	XPEarned     int               `json:"xp_earned"`
}

// ResetResult mirrors POST /api/spots/{id}/reset.
type ResetResult struct {
	Message   string   `json:"message"`
	Status    string   `json:"status"`
	NewStreak int      `json:"new_streak"`
	ToSort    []string `json:"to_sort"`
	XPEarned  int      `json:"xp_earned"`
	CheckID   *int64   `json:"check_id"`
}

// SnoozeResult mirrors POST /api/spots/{id}/snooze.
type SnoozeResult struct {
	Message string `json:"message"`
	Until   string `json:"until"`
}

// MessageResult covers endpoints that return only a human-readable message.
type MessageResult struct {
	Message string `json:"message"`
}

// CheckAllEntry is one spot's outcome inside a check-all run.
type CheckAllEntry struct {
	SpotID      int64  `json:"spot_id"`
	Status      string `json:"status"`
	ToSortCount int    `json:"to_sort_count"`
	Error       string `json:"error"`
}

// CheckAllResponse mirrors POST /api/check-all.
type CheckAllResponse struct {
	Results []CheckAllEntry `json:"results"`
}

// Camera describes a Home Assistant camera entity from GET /api/cameras.
type Camera struct {
	EntityID string `json:"entity_id"`
	Name     string `json:"name"`
	State    string `json:"state"`
}

// CamerasResponse mirrors GET /api/cameras.
type CamerasResponse struct {
	Cameras []Camera `json:"cameras"`
}

// TokenResult mirrors POST /api/settings/ha-token.
type TokenResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse mirrors GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
