package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the interactive preview.
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Gamut key.Binding
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next palette"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "previous palette"),
		),
		Gamut: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "toggle gamut mode"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy wezterm scheme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Gamut, k.Copy, k.Help, k.Quit}
}

// FullHelp returns bindings for the expanded help view, one column per group.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Gamut, k.Copy},
		{k.Help, k.Quit},
	}
}
