package components

import "github.com/hy4ri/swipepager/internal/pager"

// PageChangedMsg is emitted after the active page has been replaced.
type PageChangedMsg struct {
	From int
	To   int
}

// EdgeReachedMsg is emitted when a page change was asked for past the first
// or last page.
type EdgeReachedMsg struct {
	Index     int
	Direction pager.Direction
}

// DragStartedMsg is emitted when a mouse drag begins.
type DragStartedMsg struct{}

// PageCopiedMsg reports the outcome of copying the active page.
type PageCopiedMsg struct {
	Index int
	Err   error
}

// frameMsg drives the release animation of one pager.
type frameMsg struct {
	id         int
	generation int
}
