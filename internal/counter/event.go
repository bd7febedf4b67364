package counter

// Event describes what a mutation did, so the display layer does not have to
// re-derive it from before/after states.
type Event int

const (
	EventNone Event = iota
	EventProgressed
	EventStarAwarded
	EventRegressed
	EventStarRevoked
	EventReconfigured
	EventReset
	EventNormalized
)

var eventNames = map[Event]string{
	EventNone:         "none",
	EventProgressed:   "progressed",
	EventStarAwarded:  "star-awarded",
	EventRegressed:    "regressed",
	EventStarRevoked:  "star-revoked",
	EventReconfigured: "reconfigured",
	EventReset:        "reset",
	EventNormalized:   "normalized",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}

// Awarded reports whether the event completed a star.
func (e Event) Awarded() bool { return e == EventStarAwarded }
