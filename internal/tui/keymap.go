package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the explorer key bindings
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Decrement  key.Binding
	Increment  key.Binding
	CoarseDown key.Binding
	CoarseUp   key.Binding
	Reset      key.Binding
	Explorer   key.Binding
	Tenures    key.Binding
	Help       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous parameter"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next parameter"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Increment: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		CoarseDown: key.NewBinding(
			key.WithKeys("pgdown", "H"),
			key.WithHelp("PgDn/H", "decrease x10"),
		),
		CoarseUp: key.NewBinding(
			key.WithKeys("pgup", "L"),
			key.WithHelp("PgUp/L", "increase x10"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset to profile"),
		),
		Explorer: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "explorer"),
		),
		Tenures: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tenures"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
