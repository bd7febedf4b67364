// Package counter implements the star progress counter.
package counter

// DefaultClicksPerStar is used when no valid threshold is configured.
const DefaultClicksPerStar = 10

// State is a point-in-time copy of the counter.
type State struct {
	Progress      int
	Stars         int
	ClicksPerStar int
}

// Counter owns the progress state and is its only writer.
// It is not safe for concurrent use; callers drive it from a single event loop.
type Counter struct {
	progress      int
	stars         int
	clicksPerStar int
}

// New returns a counter with zero progress and no stars. A non-positive
// threshold falls back to DefaultClicksPerStar.
func New(clicksPerStar int) *Counter {
	if clicksPerStar <= 0 {
		clicksPerStar = DefaultClicksPerStar
	}
	return &Counter{clicksPerStar: clicksPerStar}
}

// Increment adds one click. Reaching the threshold awards a star and starts
// the next one from zero.
func (c *Counter) Increment() Event {
	c.progress++
	if c.progress >= c.clicksPerStar {
		c.stars++
		c.progress = 0
		return EventStarAwarded
	}
	return EventProgressed
}

// Decrement removes one click. With no progress left it takes back the last
// star and leaves the bar one click short of full. At the floor it does nothing.
func (c *Counter) Decrement() Event {
	switch {
	case c.progress > 0:
		c.progress--
		return EventRegressed
	case c.stars > 0:
		c.stars--
		c.progress = c.clicksPerStar - 1
		return EventStarRevoked
	default:
		return EventNone
	}
}

// SetThreshold changes the clicks required per star. Non-positive values are
// ignored and reported as false. Stars are never added or removed here.
func (c *Counter) SetThreshold(n int) bool {
	if n <= 0 {
		return false
	}
	c.clicksPerStar = n
	if c.progress >= c.clicksPerStar {
		c.progress = c.clicksPerStar - 1
	}
	return true
}

// SetThresholdString parses s with ParseThreshold and applies the result.
func (c *Counter) SetThresholdString(s string) bool {
	n, ok := ParseThreshold(s)
	if !ok {
		return false
	}
	return c.SetThreshold(n)
}

// Reset clears progress and stars. The threshold is kept.
func (c *Counter) Reset() Event {
	c.progress = 0
	c.stars = 0
	return EventReset
}

// Normalize clamps every field back into its valid range and reports whether
// anything had to change.
func (c *Counter) Normalize() bool {
	before := c.Snapshot()
	if c.clicksPerStar <= 0 {
		c.clicksPerStar = DefaultClicksPerStar
	}
	c.progress = max(0, min(c.progress, c.clicksPerStar-1))
	c.stars = max(0, c.stars)
	return c.Snapshot() != before
}

// Progress returns the clicks accumulated toward the next star.
func (c *Counter) Progress() int { return c.progress }

// Stars returns the number of stars earned.
func (c *Counter) Stars() int { return c.stars }

// ClicksPerStar returns the current threshold.
func (c *Counter) ClicksPerStar() int { return c.clicksPerStar }

// Snapshot copies the current state.
func (c *Counter) Snapshot() State {
	return State{Progress: c.progress, Stars: c.stars, ClicksPerStar: c.clicksPerStar}
}

// Fraction returns progress toward the next star in [0, 1).
func (c *Counter) Fraction() float64 {
	return c.Snapshot().Fraction()
}

// MinusEnabled reports whether a decrement would change anything.
func (c *Counter) MinusEnabled() bool {
	return c.Snapshot().MinusEnabled()
}

// PlusEnabled is always true; there is no ceiling on stars.
func (c *Counter) PlusEnabled() bool { return true }

// Fraction returns Progress / ClicksPerStar, or 0 for a zero threshold.
func (s State) Fraction() float64 {
	if s.ClicksPerStar <= 0 {
		return 0
	}
	return float64(s.Progress) / float64(s.ClicksPerStar)
}

// MinusEnabled is false only at the floor (no progress and no stars).
func (s State) MinusEnabled() bool {
	return !(s.Stars == 0 && s.Progress == 0)
}
