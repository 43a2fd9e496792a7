package components

import (
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/hy4ri/swipepager/internal/content"
	"github.com/hy4ri/swipepager/internal/logging"
	"github.com/hy4ri/swipepager/internal/pager"
	"github.com/hy4ri/swipepager/internal/tui/styles"
	"github.com/hy4ri/swipepager/internal/tui/utils"
)

// maxAnimationSeconds bounds a release animation; an undamped spring would
// otherwise oscillate forever.
const maxAnimationSeconds = 3

// PagerModel renders the pages side by side and turns mouse drags and keys
// into page changes.
type PagerModel struct {
	id        int
	pages     []content.Page
	ctrl      *pager.Controller
	tracker   *pager.Tracker
	indicator *IndicatorModel
	keys      PagerKeyMap
	logger    *slog.Logger
	copyText  func(string) error

	width, height int
	focused       bool

	// pointer position where the gesture started
	originX float64
	originY float64
	// where an interrupted animation left the pages; drawn only
	dragBase float64

	spring     harmonica.Spring
	animDX     float64
	animVel    float64
	animStart  float64
	animFrom   int
	animating  bool
	frames     int
	generation int
}

// PagerOption customizes a PagerModel.
type PagerOption func(*PagerModel)

// WithLogger sets the logger used for gesture diagnostics.
func WithLogger(l *slog.Logger) PagerOption {
	return func(m *PagerModel) {
		m.logger = logging.WithComponent(l, "pager")
	}
}

// WithClipboard replaces the clipboard writer used to copy pages.
func WithClipboard(fn func(string) error) PagerOption {
	return func(m *PagerModel) {
		m.copyText = fn
	}
}

// WithTracker replaces the velocity tracker.
func WithTracker(t *pager.Tracker) PagerOption {
	return func(m *PagerModel) {
		m.tracker = t
	}
}

// WithID distinguishes the animation frames of several pagers.
func WithID(id int) PagerOption {
	return func(m *PagerModel) {
		m.id = id
	}
}

// NewPager creates a pager over a fixed list of pages, active on the first.
func NewPager(pages []content.Page, style pager.Style, indicator pager.IndicatorStyle, opts ...PagerOption) *PagerModel {
	m := &PagerModel{
		pages:     pages,
		ctrl:      pager.NewController(len(pages), style),
		tracker:   pager.NewTracker(),
		indicator: NewIndicator(indicator, len(pages)),
		keys:      DefaultPagerKeyMap(),
		logger:    logging.Discard(),
		copyText:  clipboard.WriteAll,
		focused:   true,
	}
	for _, opt := range opts {
		opt(m)
	}

	if a := style.Animation; a.Curve == pager.CurveSpring {
		fps := a.FPS
		if fps <= 0 {
			fps = 60
		}
		m.spring = harmonica.NewSpring(harmonica.FPS(fps), a.Frequency, a.Damping)
	}
	return m
}

// Init implements Component.
func (m *PagerModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (m *PagerModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if !m.focused {
			return m, nil
		}
		return m, m.handleMouseMsg(msg)

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m, m.handleKeyMsg(msg)

	case frameMsg:
		if msg.id != m.id || msg.generation != m.generation || !m.animating {
			return m, nil
		}
		return m, m.stepAnimation()
	}
	return m, nil
}

// handleMouseMsg processes drag gestures and horizontal wheel scrolling.
func (m *PagerModel) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelLeft && msg.Action == tea.MouseActionPress:
		return m.step(-1)

	case msg.Button == tea.MouseButtonWheelRight && msg.Action == tea.MouseActionPress:
		return m.step(1)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.ctrl.Window() == nil || msg.Y < 0 || msg.Y >= m.height {
			return nil
		}
		m.dragBase = m.animDX
		m.stopAnimation()
		m.originX = float64(msg.X)
		m.originY = float64(msg.Y)

		m.ctrl.BeginDrag()
		m.tracker.Reset()
		m.tracker.Add(pager.Vector{})
		m.ctrl.DragTo(pager.Vector{}, pager.Vector{})
		m.logger.Debug("drag started", slog.Int("x", msg.X), slog.Int("y", msg.Y), slog.Int("active", m.Active()))
		return func() tea.Msg { return DragStartedMsg{} }

	case msg.Action == tea.MouseActionMotion && m.ctrl.Dragging():
		t := m.translation(msg)
		m.tracker.Add(t)
		m.ctrl.DragTo(t, m.tracker.Predicted(t))
		return nil

	case msg.Action == tea.MouseActionRelease && m.ctrl.Dragging():
		t := m.translation(msg)
		m.tracker.Add(t)
		m.ctrl.DragTo(t, m.tracker.Predicted(t))
		return m.release()
	}
	return nil
}

// handleKeyMsg processes keyboard paging.
func (m *PagerModel) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Prev):
		return m.step(-1)
	case key.Matches(msg, m.keys.Next):
		return m.step(1)
	case key.Matches(msg, m.keys.First):
		return m.jump(0)
	case key.Matches(msg, m.keys.Last):
		return m.jump(len(m.pages) - 1)
	case key.Matches(msg, m.keys.Yank):
		return m.yank()
	}
	return nil
}

func (m *PagerModel) translation(msg tea.MouseMsg) pager.Vector {
	return pager.Vector{
		DX: float64(msg.X) - m.originX,
		DY: float64(msg.Y) - m.originY,
	}
}

// release ends the gesture and commits its outcome.
func (m *PagerModel) release() tea.Cmd {
	d := m.ctrl.Drag()
	tr := m.ctrl.EndDrag()
	m.tracker.Reset()

	dir := pager.DragDirection(d.Translation, d.Predicted, m.ctrl.Style().PageWidth)
	m.logger.Debug("drag released",
		slog.Float64("dx", d.Translation.DX),
		slog.Float64("predicted", d.Predicted.DX),
		slog.Int("from", tr.From),
		slog.Int("to", tr.To),
	)
	base := m.dragBase
	m.dragBase = 0
	return m.settle(tr, base+d.Translation.DX, dir)
}

func (m *PagerModel) step(delta int) tea.Cmd {
	if m.ctrl.Window() == nil || m.ctrl.Dragging() {
		return nil
	}
	dir := pager.DirectionNext
	if delta < 0 {
		dir = pager.DirectionPrevious
	}
	return m.settle(m.ctrl.Step(delta), m.animDX, dir)
}

func (m *PagerModel) jump(index int) tea.Cmd {
	if m.ctrl.Window() == nil || m.ctrl.Dragging() {
		return nil
	}
	dir := pager.DirectionNext
	if index < m.Active() {
		dir = pager.DirectionPrevious
	}
	return m.settle(m.ctrl.JumpTo(index), m.animDX, dir)
}

// settle reports a committed transition and animates the pages from where
// they were drawn to their new resting place.
func (m *PagerModel) settle(tr pager.Transition, dx float64, dir pager.Direction) tea.Cmd {
	// The new active page was drawn one page offset away per step.
	po := m.ctrl.Style().PageOffset()
	start := dx + po*float64(tr.To-tr.From)
	start = math.Max(math.Min(start, 2*po), -2*po)

	var cmds []tea.Cmd
	if tr.Changed {
		changed := PageChangedMsg{From: tr.From, To: tr.To}
		m.indicator.Update(changed)
		m.logger.Info("page changed", slog.Int("from", tr.From), slog.Int("to", tr.To))
		cmds = append(cmds, func() tea.Msg { return changed })
	}
	if tr.Clamped {
		index := tr.To
		cmds = append(cmds, func() tea.Msg { return EdgeReachedMsg{Index: index, Direction: dir} })
	}
	cmds = append(cmds, m.animateFrom(start, tr.From))
	return tea.Batch(cmds...)
}

func (m *PagerModel) yank() tea.Cmd {
	if m.ctrl.Window() == nil {
		return nil
	}
	index := m.Active()
	body := m.pages[index].Body
	write := m.copyText
	return func() tea.Msg {
		return PageCopiedMsg{Index: index, Err: write(body)}
	}
}

// animateFrom starts a spring from offset start back to rest. Page scales
// travel with it from their sizes around the previously active page.
func (m *PagerModel) animateFrom(start float64, from int) tea.Cmd {
	if m.ctrl.Style().Animation.Curve != pager.CurveSpring || math.Abs(start) < 0.5 {
		m.stopAnimation()
		return nil
	}
	m.animDX = start
	m.animVel = 0
	m.animStart = start
	m.animFrom = from
	m.animating = true
	m.frames = 0
	m.generation++
	return m.nextFrame()
}

func (m *PagerModel) stepAnimation() tea.Cmd {
	m.animDX, m.animVel = m.spring.Update(m.animDX, m.animVel, 0)
	m.frames++

	fps := m.ctrl.Style().Animation.FPS
	if fps <= 0 {
		fps = 60
	}
	budget := maxAnimationSeconds * fps
	if (math.Abs(m.animDX) < 0.5 && math.Abs(m.animVel) < 1) || m.frames >= budget {
		m.stopAnimation()
		return nil
	}
	return m.nextFrame()
}

func (m *PagerModel) stopAnimation() {
	m.animDX = 0
	m.animVel = 0
	m.animating = false
	m.generation++
}

func (m *PagerModel) nextFrame() tea.Cmd {
	id, gen := m.id, m.generation
	return tea.Tick(m.ctrl.Style().Animation.FrameInterval(), func(time.Time) tea.Msg {
		return frameMsg{id: id, generation: gen}
	})
}

// displayDX is the translation pages are drawn with this frame.
func (m *PagerModel) displayDX() float64 {
	if m.ctrl.Dragging() {
		return m.dragBase + m.ctrl.Drag().DX()
	}
	return m.animDX
}

// animProgress is how much of the release animation is left, from 1 at
// its start to 0 at rest. Spring overshoot counts as 0.
func (m *PagerModel) animProgress() float64 {
	if !m.animating || m.animStart == 0 {
		return 0
	}
	return math.Min(math.Max(m.animDX/m.animStart, 0), 1)
}

// animatedScale blends the resting scale of index towards its scale around
// the previously active page while the release animation runs.
func (m *PagerModel) animatedScale(index int, scale float64) float64 {
	p := m.animProgress()
	if p == 0 || m.animFrom == m.Active() || m.animFrom < 0 || m.animFrom >= len(m.pages) {
		return scale
	}
	prev := pager.Scale(pager.ComputeWindow(m.animFrom, len(m.pages)), m.ctrl.Style(), index)
	return scale + (prev-scale)*p
}

// View implements Component.
func (m *PagerModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.ctrl.Window() == nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styles.Empty.Render("No pages"))
	}

	areaH := m.height
	indicator := m.indicator.View()
	if indicator != "" && areaH > 1 {
		areaH--
	}

	canvas := blankCanvas(m.width, m.height)
	for _, tr := range m.visibleLayouts(m.displayDX()) {
		m.drawPage(canvas, tr, areaH)
	}
	if indicator != "" {
		overlay(canvas, []string{indicator}, 0, m.height-1, m.width)
	}
	return strings.Join(canvas, "\n")
}

// visibleLayouts returns the pages to draw, bottom of the stack first.
func (m *PagerModel) visibleLayouts(dx float64) []pager.Transform {
	var out []pager.Transform
	for _, i := range m.ctrl.Window().All() {
		tr := m.ctrl.LayoutWithOffset(i, dx)
		tr.Scale = m.animatedScale(i, tr.Scale)
		if tr.Visible && tr.Scale > 0 {
			out = append(out, tr)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ZIndex != out[j].ZIndex {
			return out[i].ZIndex < out[j].ZIndex
		}
		return out[i].Index < out[j].Index
	})
	return out
}

func (m *PagerModel) drawPage(canvas []string, tr pager.Transform, areaH int) {
	s := m.ctrl.Style()
	w := utils.Round(s.PageWidth * tr.Scale)
	h := utils.Round(s.PageHeight * tr.Scale)
	if w <= styles.PageFrameWidth || h <= styles.PageFrameHeight {
		return
	}

	lines := strings.Split(m.renderPage(tr.Index, w, h, tr.Index == m.Active()), "\n")
	center := m.width/2 + utils.Round(tr.OffsetX)
	x := center - w/2
	y := max((areaH-h)/2, 0)
	if room := areaH - y; len(lines) > room {
		lines = lines[:max(room, 0)]
	}
	overlay(canvas, lines, x, y, m.width)
}

func (m *PagerModel) renderPage(index, w, h int, focused bool) string {
	innerW := w - styles.PageFrameWidth
	innerH := h - styles.PageFrameHeight
	page := m.pages[index]

	frame, titleStyle := styles.PageUnfocused, styles.PageTitleUnfocused
	if focused {
		frame, titleStyle = styles.PageFocused, styles.PageTitle
	}

	rows := []string{titleStyle.Render(utils.TruncateString(page.Title, innerW))}
	rows = append(rows, page.Lines(innerW, innerH-1)...)
	return frame.
		Width(w - 2).
		Height(h - 2).
		MaxHeight(h).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func blankCanvas(width, height int) []string {
	blank := strings.Repeat(" ", width)
	canvas := make([]string, height)
	for i := range canvas {
		canvas[i] = blank
	}
	return canvas
}

// overlay draws fg onto canvas at column x and row y, clipping whatever
// falls outside [0, width).
func overlay(canvas, fg []string, x, y, width int) {
	for i, line := range fg {
		row := y + i
		if row < 0 || row >= len(canvas) {
			continue
		}
		start, end := max(x, 0), min(x+xansi.StringWidth(line), width)
		if end <= start {
			continue
		}
		bg := canvas[row]
		canvas[row] = xansi.Cut(bg, 0, start) + xansi.Cut(line, start-x, end-x) + xansi.Cut(bg, end, width)
	}
}

// SetSize implements Component.
func (m *PagerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.indicator.SetSize(width, 1)
}

// Focus implements Focusable.
func (m *PagerModel) Focus() {
	m.focused = true
}

// Blur implements Focusable. A drag in progress is dropped.
func (m *PagerModel) Blur() {
	m.focused = false
	if m.ctrl.Dragging() {
		m.ctrl.CancelDrag()
		m.tracker.Reset()
		m.dragBase = 0
	}
}

// Focused implements Focusable.
func (m *PagerModel) Focused() bool {
	return m.focused
}

// Active returns the active page index, or -1 when there are no pages.
func (m *PagerModel) Active() int {
	return m.ctrl.Window().Active()
}

// PageCount returns the number of pages.
func (m *PagerModel) PageCount() int {
	return len(m.pages)
}

// ActivePage returns the active page, if any.
func (m *PagerModel) ActivePage() (content.Page, bool) {
	if m.ctrl.Window() == nil {
		return content.Page{}, false
	}
	return m.pages[m.Active()], true
}

// Dragging reports whether a drag is in progress.
func (m *PagerModel) Dragging() bool {
	return m.ctrl.Dragging()
}

// Animating reports whether a release animation is running.
func (m *PagerModel) Animating() bool {
	return m.animating
}

// Keys returns the pager's key bindings.
func (m *PagerModel) Keys() PagerKeyMap {
	return m.keys
}
