package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Plus      key.Binding
	Minus     key.Binding
	Focus     key.Binding
	Press     key.Binding
	Reset     key.Binding
	Threshold key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Plus: key.NewBinding(
			key.WithKeys("+", "=", "up", "k"),
			key.WithHelp("+", "add"),
		),
		Minus: key.NewBinding(
			key.WithKeys("-", "_", "down", "j"),
			key.WithHelp("-", "remove"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "focus"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "press"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Threshold: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "clicks per star"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Plus, k.Minus, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Plus, k.Minus, k.Focus, k.Press},
		{k.Reset, k.Threshold, k.Help, k.Quit},
	}
}
