package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/starbar/internal/counter"
)

// ThresholdArg extracts the threshold text from a positional argument. Besides
// a bare number it accepts the query forms "?10" and "?=10"; in "?a=1&=10" the
// empty-key parameter wins.
func ThresholdArg(arg string) string {
	arg = strings.TrimSpace(arg)
	if !strings.HasPrefix(arg, "?") {
		return arg
	}
	query := arg[1:]
	for _, part := range strings.Split(query, "&") {
		if strings.HasPrefix(part, "=") {
			return part[1:]
		}
	}
	return query
}

// FirstValidThreshold returns the first candidate that parses to a positive
// threshold. Nil, empty and invalid candidates are skipped; with none left it
// returns counter.DefaultClicksPerStar.
func FirstValidThreshold(candidates ...*string) int {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if n, ok := counter.ParseThreshold(*c); ok {
			return n
		}
	}
	return counter.DefaultClicksPerStar
}

// ParseDuration parses an optional duration string. A bare integer is read as
// milliseconds. Absent or malformed values report false.
func ParseDuration(value *string) (time.Duration, bool) {
	if value == nil {
		return 0, false
	}
	s := strings.TrimSpace(*value)
	if s == "" {
		return 0, false
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, true
	}
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Millisecond, true
	}
	return 0, false
}
