package confirm

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the confirmation prompt.
type KeyMap struct {
	Confirm key.Binding
	Decline key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y/enter", "run"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n", "N", "esc", "q"),
			key.WithHelp("n/esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel"),
		),
	}
}
