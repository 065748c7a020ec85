package app

import (
	"context"
	"log"
	"time"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off exponentially while the backend is unreachable.
// It returns immediately.
func (a *App) StartPoller(ctx context.Context) {
	interval := a.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			if err := a.Refresh(ctx); err != nil {
				log.Printf("spot poll failed: %v", err)
			}

			wait := calculateBackoff(a.Store.Snapshot().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// calculateBackoff doubles the base interval per consecutive failure, capped
// at maxBackoff. Zero failures returns the base interval unchanged.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
