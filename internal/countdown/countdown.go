// Package countdown provides the cancellable one-second tick that drives a
// running session.
package countdown

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Interval is the countdown cadence.
const Interval = time.Second

// Handle owns a repeating ticker for one session. After Cancel, C returns a
// nil channel so a select on it never fires.
type Handle struct {
	mu        sync.Mutex
	ticker    clockwork.Ticker
	cancelled bool
}

// Start begins ticking every interval on clock.
func Start(clock clockwork.Clock, interval time.Duration) *Handle {
	return &Handle{ticker: clock.NewTicker(interval)}
}

// C returns the tick channel, or nil once the handle is cancelled.
func (h *Handle) C() <-chan time.Time {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled {
		return nil
	}
	return h.ticker.Chan()
}

// Cancel stops the ticker. It is safe to call more than once and on nil.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled {
		return
	}
	h.cancelled = true
	h.ticker.Stop()
}

// Cancelled reports whether Cancel has been called.
func (h *Handle) Cancelled() bool {
	if h == nil {
		return true
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cancelled
}
