package display

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// StarGlyph is the earned-star icon.
const StarGlyph = "⭐"

// StarIcons lists the glyphs for n stars, capped to fit width cells. When the
// row would overflow, the last slots are replaced by a "+K" marker counting the
// stars not drawn. A non-positive width disables the cap.
func StarIcons(n, width int) (icons []string, overflow string) {
	if n <= 0 {
		return nil, ""
	}
	glyphWidth := runewidth.StringWidth(StarGlyph)
	if glyphWidth < 1 {
		glyphWidth = 1
	}
	// one cell of spacing between glyphs
	fit := n
	if width > 0 {
		fit = (width + 1) / (glyphWidth + 1)
	}
	if fit >= n {
		return repeatGlyph(n), ""
	}
	for shown := fit; shown >= 0; shown-- {
		overflow = fmt.Sprintf("+%d", n-shown)
		used := shown*(glyphWidth+1) + runewidth.StringWidth(overflow)
		if used <= width {
			return repeatGlyph(shown), overflow
		}
	}
	return nil, fmt.Sprintf("+%d", n)
}

func repeatGlyph(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = StarGlyph
	}
	return out
}

// StarRow renders StarIcons as plain text separated by single spaces.
func StarRow(n, width int) string {
	icons, overflow := StarIcons(n, width)
	parts := append([]string(nil), icons...)
	if overflow != "" {
		parts = append(parts, overflow)
	}
	return strings.Join(parts, " ")
}
