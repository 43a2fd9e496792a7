// Package utils provides shared utility functions for the TUI.
package utils

import (
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// TruncateString truncates a string to a given width and adds an ellipsis if truncated.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}

	if width <= 1 {
		return "…"
	}

	res := s
	for lipgloss.Width(res+"…") > width && len(res) > 0 {
		_, size := utf8.DecodeLastRuneInString(res)
		res = res[:len(res)-size]
	}
	return res + "…"
}

// Round rounds a cell measure to the nearest integer, halves away from zero.
func Round(f float64) int {
	if f < 0 {
		return -int(-f + 0.5)
	}
	return int(f + 0.5)
}
