// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for the focused page
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// IndicatorBackground is what indicator marks fade towards as their opacity
// drops. It has to be a concrete hex value to blend with.
const IndicatorBackground = "#000000"

// Page styles
// NOTE: Border and padding are counted inside the page size, so
// PageFrameWidth/PageFrameHeight must match them.
var (
	// PageFocused is the frame of the active page
	PageFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)

	// PageUnfocused is the frame of neighbor pages
	PageUnfocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Foreground(Subtle).
			Faint(true).
			Padding(0, 1)

	// PageTitle is the first line inside a page
	PageTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	// PageTitleUnfocused is the title of neighbor pages
	PageTitleUnfocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(Subtle)
)

// PageFrameWidth and PageFrameHeight are the cells the page frame takes
// (border plus horizontal padding).
const (
	PageFrameWidth  = 4
	PageFrameHeight = 2
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(Subtle).
			Padding(0, 1)

	// StatusBarKey highlights key names in the status bar
	StatusBarKey = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor)

	// StatusBarWarning is for edge and clamp notices
	StatusBarWarning = lipgloss.NewStyle().
				Foreground(WarningColor)
)

// Help styles
var (
	HelpKey = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Subtle).
			Faint(true)
)

// Dialog styles
var (
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)
)

// Empty is used when there is nothing to page through.
var Empty = lipgloss.NewStyle().
	Foreground(Subtle).
	Italic(true)
