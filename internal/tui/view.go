package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/starbar/internal/display"
)

const (
	defaultBarWidth = 40
	maxBarWidth     = 60
	minBarWidth     = 10
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	readoutStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	starStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5D76E"))
	newStarStyle = starStyle.Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	buttonStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	focusedButtonStyle  = buttonStyle.BorderForeground(lipgloss.Color("#C89A3A"))
	pressedButtonStyle  = focusedButtonStyle.Reverse(true)
	disabledButtonStyle = buttonStyle.Foreground(lipgloss.Color("#4A4A4A")).Bold(false)
	promptStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		titleStyle.Render("starbar"),
		"",
		m.renderBar(),
		readoutStyle.Render(m.frame.ProgressText),
		"",
		m.renderStars(),
		labelStyle.Render(m.frame.StarsText),
		"",
		m.renderButtons(),
		"",
		m.renderStatus(),
	}
	if m.prompting {
		sections = append(sections, "", promptStyle.Render(m.prompt.View()))
	}
	sections = append(sections, "", m.help.View(m.keys))
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	if m.zones != nil {
		return m.zones.Scan(content)
	}
	return content
}

func (m *Model) renderBar() string {
	if m.config.Animate {
		return m.bar.View()
	}
	return m.bar.ViewAs(m.frame.Fraction)
}

// renderStars draws the star row. Only the newest star is styled differently,
// and only right after it was awarded.
func (m *Model) renderStars() string {
	icons, overflow := display.StarIcons(m.frame.State.Stars, m.bar.Width)
	if len(icons) == 0 && overflow == "" {
		return mutedStyle.Render("no stars yet")
	}
	// with an overflow marker the newest star is counted in "+K", not drawn
	highlight := m.frame.AnimateNewest && overflow == ""
	parts := make([]string, 0, len(icons)+1)
	for i, icon := range icons {
		if i == len(icons)-1 && highlight {
			parts = append(parts, m.renderNewestStar(icon))
			continue
		}
		parts = append(parts, starStyle.Render(icon))
	}
	if overflow != "" {
		parts = append(parts, mutedStyle.Render(overflow))
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderNewestStar(icon string) string {
	if !m.pop.active {
		return starStyle.Render(icon)
	}
	idx := m.pop.frame()
	if idx < 0 {
		return newStarStyle.Render(icon)
	}
	glyph := popFrames[idx]
	// keep the row from shifting while the glyph grows
	if pad := runewidth.StringWidth(icon) - runewidth.StringWidth(glyph); pad > 0 {
		glyph += strings.Repeat(" ", pad)
	}
	return newStarStyle.Render(glyph)
}

func (m *Model) renderButtons() string {
	minus := m.styleFor(buttonMinus, m.frame.MinusEnabled).Render("-")
	plus := m.styleFor(buttonPlus, m.frame.PlusEnabled).Render("+")
	if m.zones != nil {
		minus = m.zones.Mark(zoneMinus, minus)
		plus = m.zones.Mark(zonePlus, plus)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, minus, "  ", plus)
}

func (m *Model) styleFor(b button, enabled bool) lipgloss.Style {
	switch {
	case !enabled:
		return disabledButtonStyle
	case m.pressed == b:
		return pressedButtonStyle
	case m.focus == b:
		return focusedButtonStyle
	default:
		return buttonStyle
	}
}

// renderStatus is the accessible description of the current state and the
// focused control.
func (m *Model) renderStatus() string {
	label := m.frame.PlusLabel
	if m.focus == buttonMinus {
		label = m.frame.MinusLabel
	}
	status := strings.Join([]string{
		fmt.Sprintf("%.0f%%", m.frame.Percent),
		m.frame.ProgressLabel,
		m.frame.StarsLabel,
		label,
	}, " · ")
	if m.width > 0 {
		status = ansi.Truncate(status, m.width, "…")
	}
	return mutedStyle.Render(status)
}

func barWidth(termWidth int) int {
	w := termWidth * 6 / 10
	if w > maxBarWidth {
		return maxBarWidth
	}
	if w < minBarWidth {
		return minBarWidth
	}
	return w
}
