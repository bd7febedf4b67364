// Package tui provides the Bubble Tea star counter interface.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/verte-zerg/starbar/internal/counter"
	"github.com/verte-zerg/starbar/internal/debounce"
	"github.com/verte-zerg/starbar/internal/display"
	"github.com/verte-zerg/starbar/internal/model"
)

type button int

const (
	buttonNone button = iota
	buttonMinus
	buttonPlus
)

const (
	zoneMinus = "minus"
	zonePlus  = "plus"
)

// Pressed feedback lasts at least this long even with debounce disabled.
const minPressFeedback = 80 * time.Millisecond

type releaseMsg struct {
	seq int
}

type normalizeMsg struct{}

// Model implements the Bubble Tea counter UI. All counter access happens in
// Update, which Bubble Tea calls from a single goroutine.
type Model struct {
	config  model.Config
	counter *counter.Counter
	gate    *debounce.Gate
	logger  *zap.Logger
	zones   *zone.Manager
	now     func() time.Time

	keys   keyMap
	help   help.Model
	bar    progress.Model
	prompt textinput.Model

	frame     display.Frame
	focus     button
	pressed   button
	pressSeq  int
	prompting bool
	pop       starPop

	width  int
	height int
}

// NewModel constructs a counter TUI model.
func NewModel(cfg model.Config, c *counter.Counter, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	prompt := textinput.New()
	prompt.Prompt = "clicks per star: "
	prompt.Placeholder = "10"
	prompt.CharLimit = 9

	barOpts := []progress.Option{
		progress.WithGradient("#C89A3A", "#F5D76E"),
		progress.WithoutPercentage(),
		progress.WithWidth(defaultBarWidth),
	}
	if !cfg.Color {
		barOpts = append(barOpts, progress.WithColorProfile(termenv.Ascii))
	}

	m := &Model{
		config:  cfg,
		counter: c,
		gate:    debounce.New(cfg.Debounce),
		logger:  logger,
		now:     time.Now,
		keys:    defaultKeyMap(),
		help:    help.New(),
		bar:     progress.New(barOpts...),
		prompt:  prompt,
		focus:   buttonPlus,
		pop:     newStarPop(),
	}
	if cfg.Mouse {
		m.zones = zone.New()
	}
	m.frame = display.NewFrame(c.Snapshot(), counter.EventNone)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.scheduleNormalize()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = barWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		if pm, ok := bar.(progress.Model); ok {
			m.bar = pm
		}
		return m, cmd
	case popFrameMsg:
		return m, m.pop.step(msg.seq)
	case releaseMsg:
		if msg.seq == m.pressSeq {
			m.pressed = buttonNone
		}
		return m, nil
	case normalizeMsg:
		return m, tea.Batch(m.normalize(), m.scheduleNormalize())
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Plus):
		return m, m.press(buttonPlus)
	case key.Matches(msg, m.keys.Minus):
		return m, m.press(buttonMinus)
	case key.Matches(msg, m.keys.Press):
		return m, m.press(m.focus)
	case key.Matches(msg, m.keys.Focus):
		if m.focus == buttonPlus {
			m.focus = buttonMinus
		} else {
			m.focus = buttonPlus
		}
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		ev := m.counter.Reset()
		m.logger.Info("progress reset", zap.Int("clicks_per_star", m.counter.ClicksPerStar()))
		return m, m.refresh(ev)
	case key.Matches(msg, m.keys.Threshold):
		m.prompting = true
		m.prompt.SetValue("")
		return m, m.prompt.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.closePrompt()
		return m, nil
	case tea.KeyEnter:
		value := m.prompt.Value()
		m.closePrompt()
		if !m.counter.SetThresholdString(value) {
			m.logger.Debug("threshold input ignored", zap.String("value", value))
			return m, nil
		}
		m.logger.Info("threshold changed", zap.Int("clicks_per_star", m.counter.ClicksPerStar()))
		return m, m.refresh(counter.EventReconfigured)
	default:
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.SetValue("")
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.prompting {
		return nil
	}
	for id, b := range map[string]button{zonePlus: buttonPlus, zoneMinus: buttonMinus} {
		if z := m.zones.Get(id); z != nil && z.InBounds(msg) {
			return m.press(b)
		}
	}
	return nil
}

// press runs one user action through the input gate and into the counter.
func (m *Model) press(b button) tea.Cmd {
	if b == buttonMinus && !m.frame.MinusEnabled {
		return nil
	}
	if !m.gate.Allow(m.now()) {
		m.logger.Debug("action debounced", zap.Bool("plus", b == buttonPlus))
		return nil
	}

	var ev counter.Event
	if b == buttonPlus {
		ev = m.counter.Increment()
	} else {
		ev = m.counter.Decrement()
	}
	m.logger.Debug("counter event",
		zap.Stringer("event", ev),
		zap.Int("progress", m.counter.Progress()),
		zap.Int("stars", m.counter.Stars()),
	)

	m.focus = b
	m.pressed = b
	m.pressSeq++
	seq := m.pressSeq
	release := tea.Tick(max(m.gate.Interval(), minPressFeedback), func(time.Time) tea.Msg {
		return releaseMsg{seq: seq}
	})
	return tea.Batch(m.refresh(ev), release)
}

// refresh recomputes the frame after ev and starts any animation it needs.
func (m *Model) refresh(ev counter.Event) tea.Cmd {
	m.frame = display.NewFrame(m.counter.Snapshot(), ev)
	var cmds []tea.Cmd
	if m.frame.AnimateNewest && m.config.Animate {
		cmds = append(cmds, m.pop.start())
	} else if m.pop.active {
		m.pop.stop()
	}
	if m.config.Animate {
		cmds = append(cmds, m.bar.SetPercent(m.frame.Fraction))
	}
	return tea.Batch(cmds...)
}

func (m *Model) normalize() tea.Cmd {
	if !m.counter.Normalize() {
		return nil
	}
	s := m.counter.Snapshot()
	m.logger.Warn("counter state repaired",
		zap.Int("progress", s.Progress),
		zap.Int("stars", s.Stars),
		zap.Int("clicks_per_star", s.ClicksPerStar),
	)
	return m.refresh(counter.EventNormalized)
}

func (m *Model) scheduleNormalize() tea.Cmd {
	if m.config.NormalizeInterval <= 0 {
		return nil
	}
	return tea.Tick(m.config.NormalizeInterval, func(time.Time) tea.Msg {
		return normalizeMsg{}
	})
}

// Close releases the mouse zone tracker.
func (m *Model) Close() {
	if m.zones != nil {
		m.zones.Close()
	}
}
