package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Home      key.Binding

	// Menus
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Back   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Home shortcuts
	Ancient key.Binding
	Modern  key.Binding
	Random  key.Binding

	// Item card
	Previous key.Binding
	Next     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Home: key.NewBinding(
			key.WithKeys("H", "0"),
			key.WithHelp("H", "home"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),

		Ancient: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "ancient wonders"),
		),
		Modern: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "new wonders"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random wonder"),
		),

		Previous: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("←/p", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "n"),
			key.WithHelp("→/n", "next"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Enter, k.Back},
		{k.Ancient, k.Modern, k.Random},
		{k.Previous, k.Next, k.Home},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
