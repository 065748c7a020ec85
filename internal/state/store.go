package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/twinsync/spotctl/internal/twinsync"
)

// Snapshot represents the latest spot data available to the UI.
type Snapshot struct {
	Spots               []twinsync.Spot
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// NeedsAttention counts spots currently flagged for sorting.
func (s Snapshot) NeedsAttention() int {
	n := 0
	for _, spot := range s.Spots {
		if spot.Status == twinsync.StatusNeedsAttention {
			n++
		}
	}
	return n
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data is
// kept but the error is recorded for visibility.
func (s *Store) Update(spots []twinsync.Spot, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Spots = cloneSpots(spots)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Spots = cloneSpots(s.snapshot.Spots)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneSpots(spots []twinsync.Spot) []twinsync.Spot {
	if len(spots) == 0 {
		return nil
	}
	dup := make([]twinsync.Spot, len(spots))
	copy(dup, spots)
	return dup
}
