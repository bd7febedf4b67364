// Package model defines shared data structures.
package model

import "time"

// Config defines widget settings resolved from arguments, env, and the config file.
type Config struct {
	ClicksPerStar     int
	Debounce          time.Duration
	NormalizeInterval time.Duration
	Animate           bool
	Mouse             bool
	Color             bool
}

// Step records one headless simulation step.
type Step struct {
	Index    int
	Action   string
	Progress int
	Stars    int
	Event    string
	Readout  string
}
