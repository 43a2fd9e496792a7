package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/swipepager/internal/pager"
	"github.com/hy4ri/swipepager/internal/tui/components"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.helpComp.SetSize(msg.Width, msg.Height)
		a.pager.SetSize(msg.Width, max(msg.Height-a.statusHeight(), 0))
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKeyMsg(msg)

	case tea.MouseMsg:
		if a.showHelp {
			return a, nil
		}
		_, cmd := a.pager.Update(msg)
		return a, cmd

	case components.HelpClosedMsg:
		a.showHelp = false
		a.pager.Focus()
		return a, nil

	case components.PageChangedMsg:
		a.setStatus(a.pageStatus(), statusInfo)
		return a, nil

	case components.EdgeReachedMsg:
		if msg.Direction == pager.DirectionPrevious {
			a.setStatus("Already on the first page", statusWarning)
		} else {
			a.setStatus("Already on the last page", statusWarning)
		}
		if a.config.UI.EdgeBell {
			return a, a.ringBell()
		}
		return a, nil

	case components.PageCopiedMsg:
		if msg.Err != nil {
			a.logger.Warn("copy to clipboard failed", slog.Int("page", msg.Index), slog.Any("err", msg.Err))
			a.setStatus(fmt.Sprintf("Copy failed: %v", msg.Err), statusError)
			return a, nil
		}
		a.setStatus(fmt.Sprintf("Copied page %d to clipboard", msg.Index+1), statusSuccess)
		return a, nil

	case bellMsg:
		if msg.err != nil {
			a.logger.Warn("edge bell failed", slog.Any("err", msg.err))
			a.setStatus(fmt.Sprintf("Bell failed: %v", msg.err), statusError)
		}
		return a, nil
	}

	// Animation frames and anything else belong to the pager.
	_, cmd := a.pager.Update(msg)
	return a, cmd
}

// handleKeyMsg processes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if a.showHelp {
		_, cmd := a.helpComp.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
		a.pager.Blur()
		return nil
	}

	_, cmd := a.pager.Update(msg)
	return cmd
}

func (a *App) ringBell() tea.Cmd {
	bell := a.bell
	return func() tea.Msg {
		return bellMsg{err: bell()}
	}
}

// pageStatus describes the active page for the status line.
func (a *App) pageStatus() string {
	page, ok := a.pager.ActivePage()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Page %d/%d  %s", a.pager.Active()+1, a.pager.PageCount(), page.Title)
}

func (a *App) statusHeight() int {
	if a.config.UI.ShowStatus {
		return 1
	}
	return 0
}
