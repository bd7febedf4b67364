// Package display derives everything the widget shows from a counter state.
package display

import (
	"fmt"

	"github.com/verte-zerg/starbar/internal/counter"
)

// Button labels read by assistive tooling and shown in the status line.
const (
	PlusLabel          = "Add progress towards earning a star"
	MinusLabel         = "Remove progress or stars"
	MinusDisabledLabel = "No progress to remove"
)

// Frame is the full render input for one state.
type Frame struct {
	State counter.State

	Fraction float64
	Percent  float64

	ProgressText  string
	ProgressLabel string
	StarsText     string
	StarsLabel    string

	AnimateNewest bool

	PlusEnabled  bool
	PlusLabel    string
	MinusEnabled bool
	MinusLabel   string
}

// NewFrame computes a frame for s after ev.
func NewFrame(s counter.State, ev counter.Event) Frame {
	fraction := s.Fraction()
	f := Frame{
		State:         s,
		Fraction:      fraction,
		Percent:       fraction * 100,
		ProgressText:  ProgressText(s.Progress, s.ClicksPerStar),
		ProgressLabel: fmt.Sprintf("%d out of %d clicks to earn a star", s.Progress, s.ClicksPerStar),
		StarsText:     StarsText(s.Stars),
		StarsLabel:    fmt.Sprintf("%d stars earned", s.Stars),
		AnimateNewest: ev.Awarded() && s.Stars > 0,
		PlusEnabled:   true,
		PlusLabel:     PlusLabel,
		MinusEnabled:  s.MinusEnabled(),
		MinusLabel:    MinusLabel,
	}
	if !f.MinusEnabled {
		f.MinusLabel = MinusDisabledLabel
	}
	return f
}

// ProgressText formats the "<p> / <n> clicks" readout.
func ProgressText(progress, clicksPerStar int) string {
	return fmt.Sprintf("%d / %d clicks", progress, clicksPerStar)
}

// StarsText formats the "<N> Stars" label.
func StarsText(stars int) string {
	return fmt.Sprintf("%d Stars", stars)
}
