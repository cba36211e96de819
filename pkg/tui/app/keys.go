package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds the calendar's top-level keys.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
	Next     key.Binding
	Prev     key.Binding
	Today    key.Binding
	Log      key.Binding
	LogPage  key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "edit day")),
		Next:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next month")),
		Prev:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prev month")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Log:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "events")),
		LogPage:  key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll events")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Next, k.Prev, k.Today, k.Log, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Activate, k.Next, k.Prev, k.Today},
		{k.Log, k.LogPage, k.Quit},
	}
}
