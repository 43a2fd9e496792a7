package pager

// Transition describes the outcome of a committed page change attempt.
type Transition struct {
	From    int
	To      int
	Changed bool
	// Clamped is set when a move was asked for but an edge swallowed it.
	Clamped bool
}

// Controller owns the committed window and the transient drag of one pager.
// It is meant to be driven from a single event loop and does no locking.
type Controller struct {
	style  Style
	count  int
	window *Window
	drag   Drag
}

// NewController creates a controller for pageCount pages, active on the
// first one.
func NewController(pageCount int, style Style) *Controller {
	return &Controller{
		style:  style,
		count:  max(pageCount, 0),
		window: ComputeWindow(0, pageCount),
	}
}

// Window returns the committed window; nil when there are no pages.
func (c *Controller) Window() *Window { return c.window }

// Style returns the geometry the controller lays pages out with.
func (c *Controller) Style() Style { return c.style }

// PageCount returns the fixed number of pages.
func (c *Controller) PageCount() int { return c.count }

// Drag returns the current transient drag.
func (c *Controller) Drag() Drag { return c.drag }

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool { return c.drag.Active }

// BeginDrag starts a gesture with zero translation.
func (c *Controller) BeginDrag() {
	c.drag = Drag{Active: true}
}

// DragTo updates the live translation. The committed window is untouched.
func (c *Controller) DragTo(translation, predicted Vector) {
	if !c.drag.Active {
		return
	}
	c.drag.Translation = translation
	c.drag.Predicted = predicted
}

// EndDrag resolves the gesture once, commits the new window and resets the
// drag to inactive.
func (c *Controller) EndDrag() Transition {
	d := c.drag
	c.drag = Drag{}
	if !d.Active || c.window == nil {
		return Transition{From: c.window.Active(), To: c.window.Active()}
	}

	from := c.window.active
	to := Resolve(c.window, d.Translation, d.Predicted, c.style.PageWidth)
	dir := DragDirection(d.Translation, d.Predicted, c.style.PageWidth)
	return c.commit(from, to, dir != DirectionNone)
}

// CancelDrag drops the gesture without evaluating it.
func (c *Controller) CancelDrag() {
	c.drag = Drag{}
}

// Step moves the active page by delta, clamped to the page range. It is a
// no-op while a drag is in progress.
func (c *Controller) Step(delta int) Transition {
	if c.window == nil || c.drag.Active || delta == 0 {
		return Transition{From: c.window.Active(), To: c.window.Active()}
	}
	from := c.window.active
	return c.commit(from, clamp(from+delta, 0, c.count-1), true)
}

// JumpTo makes index the active page, clamped to the page range.
func (c *Controller) JumpTo(index int) Transition {
	if c.window == nil || c.drag.Active {
		return Transition{From: c.window.Active(), To: c.window.Active()}
	}
	from := c.window.active
	return c.commit(from, clamp(index, 0, c.count-1), index != from)
}

func (c *Controller) commit(from, to int, requested bool) Transition {
	c.window = c.window.Update(to)
	return Transition{
		From:    from,
		To:      to,
		Changed: from != to,
		Clamped: requested && from == to,
	}
}

// Layout returns the current layout of the page at index, using the live
// drag translation.
func (c *Controller) Layout(index int) Transform {
	return Layout(c.window, c.style, index, c.drag.DX())
}

// LayoutWithOffset lays out the page at index for an arbitrary translation,
// used by renderers that animate past the live drag.
func (c *Controller) LayoutWithOffset(index int, dx float64) Transform {
	return Layout(c.window, c.style, index, dx)
}

// Layouts returns the current layout of every page.
func (c *Controller) Layouts() []Transform {
	return Layouts(c.window, c.style, c.count, c.drag.DX())
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
