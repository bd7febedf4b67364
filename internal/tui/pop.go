package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const popFPS = 30

// popFrames grow from a dot to the full star glyph as the spring settles.
var popFrames = []string{"·", "✦", "✶", "★"}

// starPop drives the newest-star animation with a damped spring from 0 to 1.
type starPop struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	active bool
	seq    int
}

type popFrameMsg struct {
	seq int
}

func newStarPop() starPop {
	return starPop{spring: harmonica.NewSpring(harmonica.FPS(popFPS), 9.0, 0.35)}
}

func (p *starPop) start() tea.Cmd {
	p.pos = 0
	p.vel = 0
	p.active = true
	p.seq++
	return popTick(p.seq)
}

func (p *starPop) stop() {
	p.active = false
	p.seq++
}

// step advances one frame and returns the next tick, or nil once settled.
func (p *starPop) step(seq int) tea.Cmd {
	if !p.active || seq != p.seq {
		return nil
	}
	p.pos, p.vel = p.spring.Update(p.pos, p.vel, 1.0)
	if math.Abs(1-p.pos) < 0.01 && math.Abs(p.vel) < 0.01 {
		p.pos = 1
		p.active = false
		return nil
	}
	return popTick(p.seq)
}

// frame returns the popFrames index for the current position, or -1 when the
// full glyph should be drawn.
func (p *starPop) frame() int {
	if !p.active || p.pos >= 1 {
		return -1
	}
	idx := int(math.Max(0, p.pos) * float64(len(popFrames)))
	if idx >= len(popFrames) {
		return -1
	}
	return idx
}

func popTick(seq int) tea.Cmd {
	return tea.Tick(time.Second/popFPS, func(time.Time) tea.Msg {
		return popFrameMsg{seq: seq}
	})
}
