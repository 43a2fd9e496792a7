package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/hy4ri/swipepager/internal/tui/components"
)

// KeyMap contains all key bindings for the application.
type KeyMap struct {
	Pager components.PagerKeyMap
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default Vim-style key bindings.
func DefaultKeyMap(pager components.PagerKeyMap) KeyMap {
	return KeyMap{
		Pager: pager,
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
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pager.Prev, k.Pager.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Pager.Bindings(),
		{k.Help, k.Quit},
	}
}
