package components

import "github.com/charmbracelet/bubbles/key"

// PagerKeyMap holds the keyboard bindings of the pager.
type PagerKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding
	Yank  key.Binding
}

// DefaultPagerKeyMap returns the default Vim-style bindings.
func DefaultPagerKeyMap() PagerKeyMap {
	return PagerKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "previous page"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next page"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last page"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy page"),
		),
	}
}

// Bindings lists the pager bindings in display order.
func (k PagerKeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.First, k.Last, k.Yank}
}
