// Package debounce rate-limits raw user actions before they reach the counter.
package debounce

import (
	"time"

	"golang.org/x/time/rate"
)

// DefaultInterval is the minimum spacing between accepted actions.
const DefaultInterval = 100 * time.Millisecond

// Gate accepts at most one action per interval. An action arriving while the
// previous accepted one is still inside its window is dropped, and dropping it
// does not extend the window.
type Gate struct {
	interval time.Duration
	limiter  *rate.Limiter
}

// New builds a gate. A non-positive interval accepts every action.
func New(interval time.Duration) *Gate {
	if interval < 0 {
		interval = 0
	}
	return &Gate{
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Allow reports whether an action at now is accepted.
func (g *Gate) Allow(now time.Time) bool {
	return g.limiter.AllowN(now, 1)
}

// Interval returns the configured window.
func (g *Gate) Interval() time.Duration {
	return g.interval
}
