package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/swipepager/internal/pager"
	"github.com/stretchr/testify/assert"
)

func TestIndicator_Shapes(t *testing.T) {
	style := pager.DefaultIndicatorStyle()

	dots := NewIndicator(style, 4)
	assert.Equal(t, 4, strings.Count(dots.View(), "●"))
	assert.False(t, dots.Hidden())

	style.Type = pager.IndicatorSquare
	style.Size = 2
	squares := NewIndicator(style, 3)
	assert.Equal(t, 6, strings.Count(squares.View(), "■"))
	assert.NotContains(t, squares.View(), "●")
}

func TestIndicator_HiddenCases(t *testing.T) {
	style := pager.DefaultIndicatorStyle()
	assert.True(t, NewIndicator(style, 0).Hidden())
	assert.Equal(t, "", NewIndicator(style, 0).View())

	style.Type = pager.IndicatorNone
	none := NewIndicator(style, 5)
	assert.True(t, none.Hidden())
	assert.Equal(t, "", none.View())
}

func TestIndicator_Centred(t *testing.T) {
	m := NewIndicator(pager.DefaultIndicatorStyle(), 3)
	m.SetSize(21, 1)
	view := m.View()
	assert.Equal(t, 21, lipgloss.Width(view))
	assert.True(t, strings.HasPrefix(view, "       "))
}

func TestIndicator_FollowsPageChanges(t *testing.T) {
	m := NewIndicator(pager.DefaultIndicatorStyle(), 3)
	m.Update(PageChangedMsg{From: 0, To: 2})
	assert.Equal(t, 2, m.active)
	m.Update(DragStartedMsg{})
	assert.Equal(t, 2, m.active)
}

func TestIndicator_OpacityBlendsToBackground(t *testing.T) {
	m := NewIndicator(pager.DefaultIndicatorStyle(), 2)
	assert.Equal(t, "#ffffff", m.colorFor(1))
	assert.Equal(t, "#000000", m.colorFor(0))
	assert.Equal(t, "#000000", m.colorFor(-3))

	half := m.colorFor(0.5)
	assert.NotEqual(t, "#ffffff", half)
	assert.NotEqual(t, "#000000", half)
}

func TestIndicator_BadColourFallsBackToWhite(t *testing.T) {
	style := pager.DefaultIndicatorStyle()
	style.ForegroundColor = "not-a-colour"
	m := NewIndicator(style, 1)
	assert.Equal(t, "#ffffff", m.colorFor(1))
}
