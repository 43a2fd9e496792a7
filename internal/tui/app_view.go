package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/swipepager/internal/tui/styles"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	if a.showHelp {
		return a.helpComp.View()
	}

	view := a.pager.View()
	if a.config.UI.ShowStatus {
		view += "\n" + a.renderStatusBar()
	}
	return view
}

// renderStatusBar renders the status message on the left and the short
// help on the right, dropping the help when both don't fit.
func (a *App) renderStatusBar() string {
	left := a.renderStatus()
	right := a.help.View(a.keys)

	// StatusBar pads one cell on each side.
	inner := a.width - 2
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap >= 1 {
		line = left + strings.Repeat(" ", gap) + right
	}
	return styles.StatusBar.MaxWidth(a.width).Render(line)
}

func (a *App) renderStatus() string {
	switch a.statusKind {
	case statusSuccess:
		return styles.StatusBarSuccess.Render(a.statusMsg)
	case statusWarning:
		return styles.StatusBarWarning.Render(a.statusMsg)
	case statusError:
		return styles.StatusBarError.Render(a.statusMsg)
	}
	return a.statusMsg
}
