// Package notify implements the transient toast queue used to report
// action outcomes. Toasts stack in creation order and expire on a fixed
// window; a nil Center is a safe no-op so callers never need to guard
// against a missing surface.
package notify

import (
	"sync"
	"time"
)

// TTL is how long a toast stays visible after creation.
const TTL = 4000 * time.Millisecond

// Severity classifies a toast for styling.
type Severity int

const (
	Info Severity = iota
	Success
	Error
)

// String returns the severity's display label.
func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Toast is one ephemeral notification.
type Toast struct {
	ID        int64
	Message   string
	Severity  Severity
	CreatedAt time.Time
}

// ExpiresAt returns the instant the toast stops being visible.
func (t Toast) ExpiresAt() time.Time {
	return t.CreatedAt.Add(TTL)
}

// Center holds the stacked toasts. Safe for concurrent use; action commands
// run on their own goroutines while the UI reads from the event loop.
type Center struct {
	mu     sync.Mutex
	nextID int64
	toasts []Toast
	now    func() time.Time
}

// NewCenter returns an empty toast center.
func NewCenter() *Center {
	return &Center{now: time.Now}
}

// Notify enqueues one toast. Fire-and-forget: it never blocks, never
// deduplicates, and is a no-op on a nil Center.
func (c *Center) Notify(message string, severity Severity) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	c.toasts = append(c.toasts, Toast{
		ID:        c.nextID,
		Message:   message,
		Severity:  severity,
		CreatedAt: c.now(),
	})
}

// Active prunes expired toasts and returns the remaining ones in creation
// order. A toast created at T is visible up to, but not at, T+TTL.
func (c *Center) Active(now time.Time) []Toast {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if now.Before(t.ExpiresAt()) {
			kept = append(kept, t)
		}
	}
	c.toasts = kept

	out := make([]Toast, len(kept))
	copy(out, kept)
	return out
}

// NextExpiry returns the earliest pending expiry, or zero when no toast is
// queued. The UI uses it to schedule its repaint timer.
func (c *Center) NextExpiry(now time.Time) time.Time {
	if c == nil {
		return time.Time{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var earliest time.Time
	for _, t := range c.toasts {
		exp := t.ExpiresAt()
		if !exp.After(now) {
			continue
		}
		if earliest.IsZero() || exp.Before(earliest) {
			earliest = exp
		}
	}
	return earliest
}
