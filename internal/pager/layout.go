package pager

// Transform is the layout of one page for one frame.
type Transform struct {
	Index   int
	OffsetX float64
	Scale   float64
	ZIndex  int
	Visible bool
}

// Offset returns the horizontal offset of the page at index for a drag
// translation dx. Pages outside the window are parked far off-screen.
func Offset(w *Window, s Style, index int, dx float64) float64 {
	// index -1 would otherwise match an absent slot
	if w == nil || index < 0 {
		return s.LargePageOffset()
	}
	po := s.PageOffset()
	switch index {
	case w.active:
		return dx
	case w.lower:
		return dx - po
	case w.lowest:
		return dx - 2*po
	case w.higher:
		return dx + po
	case w.highest:
		return dx + 2*po
	}
	return s.LargePageOffset()
}

// Scale returns the scale of the page at index. Pages outside the window
// collapse to zero.
func Scale(w *Window, s Style, index int) float64 {
	switch {
	case w == nil:
		return 0
	case index == w.active:
		return s.FocusedScale
	case w.IsNeighbor(index):
		return s.UnfocusedScale
	}
	return 0
}

// ZIndex returns the stacking order of the page at index; higher draws on top.
func ZIndex(w *Window, index int) int {
	switch {
	case w == nil:
		return 0
	case index == w.active:
		return 2
	case w.IsNearest(index):
		return 1
	}
	return 0
}

// Visible reports whether the page at index takes part in rendering and
// hit-testing at all.
func Visible(w *Window, index int) bool {
	return w.Contains(index)
}

// Layout bundles the four layout values of one page.
func Layout(w *Window, s Style, index int, dx float64) Transform {
	return Transform{
		Index:   index,
		OffsetX: Offset(w, s, index, dx),
		Scale:   Scale(w, s, index),
		ZIndex:  ZIndex(w, index),
		Visible: Visible(w, index),
	}
}

// Layouts returns the layout of every page in [0, count).
func Layouts(w *Window, s Style, count int, dx float64) []Transform {
	out := make([]Transform, count)
	for i := range out {
		out[i] = Layout(w, s, i, dx)
	}
	return out
}
