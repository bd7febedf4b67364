// Package simulate replays scripted actions against a counter without a terminal.
package simulate

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/verte-zerg/starbar/internal/counter"
	"github.com/verte-zerg/starbar/internal/display"
	"github.com/verte-zerg/starbar/internal/model"
)

// Kind is the action an Action performs.
type Kind int

const (
	KindIncrement Kind = iota
	KindDecrement
	KindReset
	KindThreshold
	KindNormalize
)

// Action is one parsed script step.
type Action struct {
	Kind  Kind
	Value string // raw threshold text for KindThreshold
}

func (a Action) String() string {
	switch a.Kind {
	case KindIncrement:
		return "inc"
	case KindDecrement:
		return "dec"
	case KindReset:
		return "reset"
	case KindThreshold:
		return "threshold=" + a.Value
	case KindNormalize:
		return "normalize"
	default:
		return "unknown"
	}
}

// ParseActions parses script tokens. Compact runs like "+++-" expand to one
// action per sign.
func ParseActions(tokens []string) ([]Action, error) {
	var actions []Action
	for _, raw := range tokens {
		for _, tok := range strings.Fields(raw) {
			parsed, err := parseToken(tok)
			if err != nil {
				return nil, err
			}
			actions = append(actions, parsed...)
		}
	}
	return actions, nil
}

func parseToken(tok string) ([]Action, error) {
	lower := strings.ToLower(tok)
	switch lower {
	case "inc", "increment", "plus":
		return []Action{{Kind: KindIncrement}}, nil
	case "dec", "decrement", "minus":
		return []Action{{Kind: KindDecrement}}, nil
	case "r", "reset":
		return []Action{{Kind: KindReset}}, nil
	case "n", "normalize":
		return []Action{{Kind: KindNormalize}}, nil
	}
	if name, value, ok := strings.Cut(lower, "="); ok {
		if name == "t" || name == "threshold" {
			return []Action{{Kind: KindThreshold, Value: value}}, nil
		}
		return nil, fmt.Errorf("unknown action %q", tok)
	}
	if strings.Trim(tok, "+-") == "" {
		out := make([]Action, 0, len(tok))
		for _, ch := range tok {
			if ch == '+' {
				out = append(out, Action{Kind: KindIncrement})
			} else {
				out = append(out, Action{Kind: KindDecrement})
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown action %q", tok)
}

// Run applies actions in order and records the state after each one.
func Run(c *counter.Counter, actions []Action, logger *zap.Logger) []model.Step {
	steps := make([]model.Step, 0, len(actions))
	for i, a := range actions {
		ev := apply(c, a)
		s := c.Snapshot()
		logger.Debug("step applied",
			zap.Int("step", i+1),
			zap.Stringer("action", a),
			zap.Stringer("event", ev),
			zap.Int("progress", s.Progress),
			zap.Int("stars", s.Stars),
		)
		steps = append(steps, model.Step{
			Index:    i + 1,
			Action:   a.String(),
			Progress: s.Progress,
			Stars:    s.Stars,
			Event:    ev.String(),
			Readout:  display.ProgressText(s.Progress, s.ClicksPerStar),
		})
	}
	return steps
}

func apply(c *counter.Counter, a Action) counter.Event {
	switch a.Kind {
	case KindIncrement:
		return c.Increment()
	case KindDecrement:
		return c.Decrement()
	case KindReset:
		return c.Reset()
	case KindThreshold:
		if c.SetThresholdString(a.Value) {
			return counter.EventReconfigured
		}
		return counter.EventNone
	case KindNormalize:
		if c.Normalize() {
			return counter.EventNormalized
		}
		return counter.EventNone
	default:
		return counter.EventNone
	}
}

const starRowWidth = 16

// Table renders steps in aligned columns.
func Table(steps []model.Step) []string {
	headers := []string{"Step", "Action", "Progress", "Stars", "Event", "Readout", "Row"}
	rows := make([][]string, 0, len(steps))
	for _, s := range steps {
		rows = append(rows, []string{
			strconv.Itoa(s.Index),
			s.Action,
			strconv.Itoa(s.Progress),
			strconv.Itoa(s.Stars),
			s.Event,
			s.Readout,
			display.StarRow(s.Stars, starRowWidth),
		})
	}
	return display.FormatTable(headers, rows, map[int]bool{0: true, 2: true, 3: true})
}
