package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/swipepager/internal/pager"
	"github.com/hy4ri/swipepager/internal/tui/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// IndicatorModel draws one mark per page, the active one fully opaque.
type IndicatorModel struct {
	style  pager.IndicatorStyle
	active int
	count  int
	width  int

	fg, bg colorful.Color
}

// NewIndicator creates an indicator for count pages.
func NewIndicator(style pager.IndicatorStyle, count int) *IndicatorModel {
	fg, err := colorful.Hex(style.ForegroundColor)
	if err != nil {
		fg = colorful.Color{R: 1, G: 1, B: 1}
	}
	bg, _ := colorful.Hex(styles.IndicatorBackground)
	return &IndicatorModel{
		style: style,
		count: count,
		fg:    fg,
		bg:    bg,
	}
}

// Init implements Component.
func (m *IndicatorModel) Init() tea.Cmd {
	return nil
}

// Update implements Component. The pager forwards its PageChangedMsg here.
func (m *IndicatorModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(PageChangedMsg); ok {
		m.active = msg.To
	}
	return m, nil
}

// SetSize implements Component. Only the width is used.
func (m *IndicatorModel) SetSize(width, _ int) {
	m.width = width
}

// Hidden reports whether the indicator draws nothing at all.
func (m *IndicatorModel) Hidden() bool {
	return len(pager.IndicatorMarks(m.active, m.count, m.style)) == 0
}

// View implements Component. It returns a single line, centred when a
// width is set, or "" when hidden.
func (m *IndicatorModel) View() string {
	marks := pager.IndicatorMarks(m.active, m.count, m.style)
	if len(marks) == 0 {
		return ""
	}

	glyph := "●"
	if m.style.Type == pager.IndicatorSquare {
		glyph = "■"
	}
	shape := strings.Repeat(glyph, max(m.style.Size, 1))

	parts := make([]string, len(marks))
	for i, mark := range marks {
		parts[i] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.colorFor(mark.Opacity))).
			Render(shape)
	}
	line := strings.Join(parts, " ")

	if m.width > 0 && lipgloss.Width(line) < m.width {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
	}
	return line
}

// colorFor fades the foreground towards the background as opacity drops.
func (m *IndicatorModel) colorFor(opacity float64) string {
	opacity = min(max(opacity, 0), 1)
	return m.fg.BlendRgb(m.bg, 1-opacity).Clamped().Hex()
}
