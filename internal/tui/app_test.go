package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/swipepager/internal/config"
	"github.com/hy4ri/swipepager/internal/content"
	"github.com/hy4ri/swipepager/internal/pager"
	"github.com/hy4ri/swipepager/internal/tui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Pager.PageWidth = 20
	cfg.Pager.PageHeight = 6
	cfg.Pager.InterPagePadding = 2
	cfg.Animation.Curve = string(pager.CurveNone)
	cfg.UI.EdgeBell = true
	cfg.UI.ShowStatus = true
	return cfg
}

type testApp struct {
	*App
	rings  int
	copied string
}

func newTestApp(t *testing.T, n int, bellErr error) *testApp {
	t.Helper()
	ta := &testApp{}
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ta.App = NewApp(content.Demo(n), testConfig(),
		WithBell(func() error {
			ta.rings++
			return bellErr
		}),
		WithPagerOptions(
			components.WithTracker(pager.NewTrackerWithClock(func() time.Time { return at })),
			components.WithClipboard(func(s string) error {
				ta.copied = s
				return nil
			}),
		),
	)
	ta.Update(tea.WindowSizeMsg{Width: 80, Height: 14})
	return ta
}

// dispatch sends msg and feeds every message its commands produce back in,
// the way the bubbletea runtime would.
func (ta *testApp) dispatch(msg tea.Msg) []tea.Msg {
	var seen []tea.Msg
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		seen = append(seen, next)
		if _, ok := next.(tea.QuitMsg); ok {
			continue
		}
		_, cmd := ta.Update(next)
		queue = append(queue, run(cmd)...)
	}
	return seen[1:]
}

func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_LoadingBeforeSize(t *testing.T) {
	a := NewApp(content.Demo(2), testConfig())
	assert.Equal(t, "Loading...", a.View())
}

func TestApp_LayoutAndStatus(t *testing.T) {
	ta := newTestApp(t, 3, nil)
	lines := strings.Split(ta.View(), "\n")
	require.Len(t, lines, 14)
	assert.Contains(t, lines[13], "Page 1/3")
	assert.Contains(t, lines[13], "quit")

	ta.dispatch(runes("l"))
	assert.Equal(t, 1, ta.Pager().Active())
	assert.Contains(t, ta.View(), "Page 2/3")
}

func TestApp_StatusHidden(t *testing.T) {
	cfg := testConfig()
	cfg.UI.ShowStatus = false
	a := NewApp(content.Demo(3), cfg)
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 14})
	lines := strings.Split(a.View(), "\n")
	assert.Len(t, lines, 14)
	assert.NotContains(t, a.View(), "Page 1/3")
}

func TestApp_EdgeRingsBell(t *testing.T) {
	ta := newTestApp(t, 2, nil)
	ta.dispatch(runes("h"))
	assert.Equal(t, 1, ta.rings)
	assert.Contains(t, ta.View(), "Already on the first page")

	ta.dispatch(runes("G"))
	ta.dispatch(runes("l"))
	assert.Equal(t, 2, ta.rings)
	assert.Contains(t, ta.View(), "Already on the last page")
}

func TestApp_BellOff(t *testing.T) {
	ta := newTestApp(t, 2, nil)
	ta.config.UI.EdgeBell = false
	ta.dispatch(runes("h"))
	assert.Zero(t, ta.rings)
}

func TestApp_BellFailureShown(t *testing.T) {
	ta := newTestApp(t, 1, errors.New("no speaker"))
	ta.dispatch(runes("l"))
	assert.Equal(t, 1, ta.rings)
	assert.Contains(t, ta.View(), "Bell failed: no speaker")
}

func TestApp_Yank(t *testing.T) {
	ta := newTestApp(t, 3, nil)
	ta.dispatch(runes("y"))
	assert.Equal(t, content.Demo(3)[0].Body, ta.copied)
	assert.Contains(t, ta.View(), "Copied page 1 to clipboard")

	ta.Update(components.PageCopiedMsg{Index: 0, Err: errors.New("denied")})
	assert.Contains(t, ta.View(), "Copy failed: denied")
}

func TestApp_HelpToggle(t *testing.T) {
	ta := newTestApp(t, 3, nil)

	ta.dispatch(runes("?"))
	assert.True(t, ta.showHelp)
	assert.False(t, ta.Pager().Focused())
	assert.Contains(t, ta.View(), "Keyboard & Mouse")

	ta.dispatch(runes("l"))
	assert.Equal(t, 0, ta.Pager().Active())

	ta.dispatch(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelRight})
	assert.Equal(t, 0, ta.Pager().Active())

	msgs := ta.dispatch(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, msgs, tea.Msg(components.HelpClosedMsg{}))
	assert.False(t, ta.showHelp)
	assert.True(t, ta.Pager().Focused())
}

func TestApp_Quit(t *testing.T) {
	ta := newTestApp(t, 3, nil)
	assert.Contains(t, ta.dispatch(runes("q")), tea.Msg(tea.QuitMsg{}))
	assert.Contains(t, ta.dispatch(tea.KeyMsg{Type: tea.KeyCtrlC}), tea.Msg(tea.QuitMsg{}))
}

func TestApp_MouseSwipe(t *testing.T) {
	ta := newTestApp(t, 3, nil)
	ta.dispatch(tea.MouseMsg{X: 40, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	ta.dispatch(tea.MouseMsg{X: 20, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	ta.dispatch(tea.MouseMsg{X: 20, Y: 3, Action: tea.MouseActionRelease})
	assert.Equal(t, 1, ta.Pager().Active())
	assert.Contains(t, ta.View(), "Page 2/3")
}

func TestApp_NoPages(t *testing.T) {
	ta := newTestApp(t, 0, nil)
	assert.Contains(t, ta.View(), "No pages")
	ta.dispatch(runes("l"))
	assert.Zero(t, ta.rings)
}
