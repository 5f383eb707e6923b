package multiselect

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the multi-select field. Open only
// applies while the picker is closed; the remaining bindings apply while
// it is open. Keys not matched by any binding fall through to the search
// input.
type KeyMap struct {
	Open       key.Binding
	Close      key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	RemoveLast key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Open: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "open picker"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close picker"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "previous option"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "next option"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select option"),
	),
	RemoveLast: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("backspace", "remove last value"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Select, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Close},
		{k.Up, k.Down},
		{k.Select, k.RemoveLast},
	}
}
