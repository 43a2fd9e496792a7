package pager

// Vector is a 2D displacement in cells.
type Vector struct {
	DX float64
	DY float64
}

// HalfwayFactor is the share of the page width a drag has to cross before
// the active page changes.
const HalfwayFactor = 0.51

// Halfway returns the drag threshold for pages of the given width.
func Halfway(pageWidth float64) float64 {
	return pageWidth * HalfwayFactor
}

// Resolve decides the active index after a drag ends. Either the raw
// translation or the velocity-projected one crossing the threshold is
// enough. The result is clamped to the window's bounds.
func Resolve(w *Window, translation, predicted Vector, pageWidth float64) int {
	if w == nil {
		return 0
	}
	switch DragDirection(translation, predicted, pageWidth) {
	case DirectionPrevious:
		return max(w.active-1, 0)
	case DirectionNext:
		return min(w.active+1, w.upperBound-1)
	}
	return w.active
}

// Direction is the side a released drag pointed to.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionPrevious
	DirectionNext
)

// DragDirection reports which way a release crosses the threshold, before
// any clamping.
func DragDirection(translation, predicted Vector, pageWidth float64) Direction {
	halfway := Halfway(pageWidth)
	t, p := translation.DX, predicted.DX
	switch {
	case p > halfway || t > halfway:
		return DirectionPrevious
	case p < -halfway || t < -halfway:
		return DirectionNext
	}
	return DirectionNone
}

// Drag is the transient state of one gesture. The zero value is inactive.
type Drag struct {
	Active      bool
	Translation Vector
	Predicted   Vector
}

// DX is the horizontal translation to lay pages out with; zero when inactive.
func (d Drag) DX() float64 {
	if !d.Active {
		return 0
	}
	return d.Translation.DX
}
