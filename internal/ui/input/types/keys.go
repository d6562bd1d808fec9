package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for both modes
type KeyMap struct {
	Submit     key.Binding
	ToResults  key.Binding
	ToQuery    key.Binding
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Copy       key.Binding
	Helpful    key.Binding
	NotHelpful key.Binding
	Pager      key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		ToResults: key.NewBinding(
			key.WithKeys("tab", "down", "esc"),
			key.WithHelp("tab", "results"),
		),
		ToQuery: key.NewBinding(
			key.WithKeys("/", "i", "tab", "esc"),
			key.WithHelp("/", "edit query"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y", "enter"),
			key.WithHelp("c", "copy link"),
		),
		Helpful: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "helpful"),
		),
		NotHelpful: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "not helpful"),
		),
		Pager: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in pager"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// QueryHelp adapts the key map to bubbles/help for query mode
type QueryHelp struct{ KeyMap }

// ShortHelp implements help.KeyMap
func (h QueryHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Submit, h.ToResults, h.ForceQuit}
}

// FullHelp implements help.KeyMap
func (h QueryHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// ResultsHelp adapts the key map to bubbles/help for results mode
type ResultsHelp struct{ KeyMap }

// ShortHelp implements help.KeyMap
func (h ResultsHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Up, h.Down, h.Copy, h.Pager, h.ToQuery, h.Help, h.Quit}
}

// FullHelp implements help.KeyMap
func (h ResultsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.Up, h.Down, h.Top, h.Bottom},
		{h.Copy, h.Helpful, h.NotHelpful, h.Pager},
		{h.ToQuery, h.Help, h.Quit},
	}
}
