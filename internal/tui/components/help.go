package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/swipepager/internal/tui/styles"
)

// HelpClosedMsg is emitted when the help view asks to be closed.
type HelpClosedMsg struct{}

// HelpModel renders the full list of key bindings, one column per group.
type HelpModel struct {
	width, height int
	groups        [][]key.Binding
	titles        []string
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg {
				return HelpClosedMsg{}
			}
		}
	}
	return h, nil
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.groups) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Keyboard & Mouse"))
	b.WriteString("\n")

	colWidth := h.width / max(len(h.groups), 1)
	if colWidth > 36 || colWidth <= 0 {
		colWidth = 36 // Cap column width for better readability
	}
	columnStyle := lipgloss.NewStyle().Width(colWidth).PaddingRight(2)
	keyStyle := styles.HelpKey.Width(8).Align(lipgloss.Right).PaddingRight(2)

	columns := make([]string, 0, len(h.groups))
	for i, group := range h.groups {
		var col strings.Builder
		if i < len(h.titles) && h.titles[i] != "" {
			col.WriteString("\n" + styles.HelpSeparator.Render(h.titles[i]) + "\n")
		}
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			hb := binding.Help()
			col.WriteString(keyStyle.Render(hb.Key) + styles.HelpDesc.Render(hb.Desc) + "\n")
		}
		columns = append(columns, columnStyle.Render(col.String()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("Drag a page sideways with the mouse to swipe • Esc or ? to close"))

	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, styles.Dialog.Render(b.String()))
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetBindings sets the binding groups and their column titles.
func (h *HelpModel) SetBindings(groups [][]key.Binding, titles ...string) {
	h.groups = groups
	h.titles = titles
}
