package counter

import (
	"strings"
	"unicode"
)

// ParseThreshold reads a leading base-10 integer from s, ignoring leading
// whitespace and anything after the digits ("12abc" and "12.7" both give 12).
// The result is valid only when it is positive.
func ParseThreshold(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	digits := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			break
		}
		// Saturate instead of overflowing on absurd inputs.
		if n > (maxThreshold-int(ch-'0'))/10 {
			n = maxThreshold
		} else {
			n = n*10 + int(ch-'0')
		}
		digits++
	}
	if digits == 0 || neg || n <= 0 {
		return 0, false
	}
	return n, true
}

const maxThreshold = 1<<31 - 1
