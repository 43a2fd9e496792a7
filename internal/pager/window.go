// Package pager implements the paging core: the active window of page
// indices, the per-page layout derived from a drag translation, and the
// drag-end transition rule. It has no dependency on any UI framework.
package pager

import (
	"fmt"
	"strings"
)

// none marks an absent slot in a Window.
const none = -1

// Window is the set of up to five page indices tracked around the active
// page. It is a value type: transitions build a new Window and two windows
// with the same active index and upper bound compare equal with ==.
//
// A nil *Window means "no window" (zero pages, or not yet loaded). All
// methods accept a nil receiver.
type Window struct {
	active     int
	upperBound int
	lowest     int
	lower      int
	higher     int
	highest    int
}

// ComputeWindow derives the window around active for upperBound pages.
// It returns nil when there are no pages. An active index outside
// [0, upperBound) is a caller bug and panics.
func ComputeWindow(active, upperBound int) *Window {
	if upperBound <= 0 {
		return nil
	}
	if active < 0 || active >= upperBound {
		panic(fmt.Sprintf("pager: active index %d out of range [0, %d)", active, upperBound))
	}

	w := &Window{
		active:     active,
		upperBound: upperBound,
		lowest:     none,
		lower:      none,
		higher:     none,
		highest:    none,
	}

	w.lower = stepDown(active)
	if w.lower != none {
		w.lowest = stepDown(w.lower)
	}
	w.higher = stepUp(active, upperBound)
	if w.higher != none {
		w.highest = stepUp(w.higher, upperBound)
	}
	return w
}

func stepDown(i int) int {
	if i > 0 {
		return i - 1
	}
	return none
}

func stepUp(i, upperBound int) int {
	if i+1 < upperBound {
		return i + 1
	}
	return none
}

// Update returns a fresh window centred on newActive with the same upper
// bound. It is the only way to move the active page.
func (w *Window) Update(newActive int) *Window {
	if w == nil {
		return nil
	}
	return ComputeWindow(newActive, w.upperBound)
}

// Active returns the active index, or -1 for a nil window.
func (w *Window) Active() int {
	if w == nil {
		return none
	}
	return w.active
}

// UpperBound returns the page count.
func (w *Window) UpperBound() int {
	if w == nil {
		return 0
	}
	return w.upperBound
}

// Lowest returns the page two steps before the active one, if any.
func (w *Window) Lowest() (int, bool) {
	if w == nil {
		return 0, false
	}
	return w.lowest, w.lowest != none
}

// Lower returns the page directly before the active one, if any.
func (w *Window) Lower() (int, bool) {
	if w == nil {
		return 0, false
	}
	return w.lower, w.lower != none
}

// Higher returns the page directly after the active one, if any.
func (w *Window) Higher() (int, bool) {
	if w == nil {
		return 0, false
	}
	return w.higher, w.higher != none
}

// Highest returns the page two steps after the active one, if any.
func (w *Window) Highest() (int, bool) {
	if w == nil {
		return 0, false
	}
	return w.highest, w.highest != none
}

// Nearest returns the pages directly next to the active one.
func (w *Window) Nearest() []int {
	if w == nil {
		return nil
	}
	return present(w.lower, w.higher)
}

// Neighbors returns every non-active page in the window.
func (w *Window) Neighbors() []int {
	if w == nil {
		return nil
	}
	return present(w.lowest, w.lower, w.higher, w.highest)
}

// All returns every page in the window, active included, in ascending order.
func (w *Window) All() []int {
	if w == nil {
		return nil
	}
	return present(w.lowest, w.lower, w.active, w.higher, w.highest)
}

func present(indices ...int) []int {
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i != none {
			out = append(out, i)
		}
	}
	return out
}

// Contains reports whether index is one of the window's pages.
func (w *Window) Contains(index int) bool {
	if w == nil || index < 0 {
		return false
	}
	return index == w.active || w.IsNeighbor(index)
}

// IsNeighbor reports whether index is a non-active page of the window.
func (w *Window) IsNeighbor(index int) bool {
	if w == nil || index < 0 {
		return false
	}
	return index == w.lowest || index == w.lower || index == w.higher || index == w.highest
}

// IsNearest reports whether index is directly next to the active page.
func (w *Window) IsNearest(index int) bool {
	if w == nil || index < 0 {
		return false
	}
	return index == w.lower || index == w.higher
}

func (w *Window) String() string {
	if w == nil {
		return "window(none)"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "window(active=%d of %d", w.active, w.upperBound)
	for _, s := range []struct {
		name string
		i    int
	}{{"lowest", w.lowest}, {"lower", w.lower}, {"higher", w.higher}, {"highest", w.highest}} {
		if s.i != none {
			fmt.Fprintf(&b, " %s=%d", s.name, s.i)
		}
	}
	b.WriteString(")")
	return b.String()
}
