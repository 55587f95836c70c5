package help

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings the controller claims while an item is visible.
type KeyMap struct {
	Dismiss  key.Binding
	Skip     key.Binding
	DontShow key.Binding
}

// DefaultKeyMap returns esc / s / x.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip tour"),
		),
		DontShow: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "don't show again"),
		),
	}
}

// ShortHelp implements help.KeyMap from bubbles.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss, k.Skip, k.DontShow}
}

// FullHelp implements help.KeyMap from bubbles.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
