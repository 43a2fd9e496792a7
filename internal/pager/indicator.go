package pager

import (
	"errors"
	"fmt"
)

// IndicatorType selects the shape drawn per page.
type IndicatorType string

const (
	IndicatorNone   IndicatorType = "none"
	IndicatorDot    IndicatorType = "dot"
	IndicatorSquare IndicatorType = "square"
)

// ParseIndicatorType validates a configured indicator type.
func ParseIndicatorType(s string) (IndicatorType, error) {
	switch t := IndicatorType(s); t {
	case IndicatorNone, IndicatorDot, IndicatorSquare:
		return t, nil
	case "":
		return IndicatorNone, nil
	}
	return "", fmt.Errorf("invalid indicator type: %s (must be none, dot or square)", s)
}

// IndicatorStyle configures the page-position indicator.
type IndicatorStyle struct {
	Type            IndicatorType
	ActiveOpacity   float64
	InactiveOpacity float64
	ForegroundColor string // hex, e.g. "#ffffff"
	Size            int    // cells per mark
}

// DefaultIndicatorStyle returns the indicator used without configuration.
func DefaultIndicatorStyle() IndicatorStyle {
	return IndicatorStyle{
		Type:            IndicatorDot,
		ActiveOpacity:   1,
		InactiveOpacity: 0.35,
		ForegroundColor: "#FFFFFF",
		Size:            1,
	}
}

// Validate reports every field that cannot be rendered.
func (s IndicatorStyle) Validate() error {
	var errs []error
	if _, err := ParseIndicatorType(string(s.Type)); err != nil {
		errs = append(errs, err)
	}
	if s.ActiveOpacity < 0 || s.ActiveOpacity > 1 || s.InactiveOpacity < 0 || s.InactiveOpacity > 1 {
		errs = append(errs, fmt.Errorf("opacities must be within [0, 1] (got %g/%g)", s.ActiveOpacity, s.InactiveOpacity))
	}
	if s.Size < 0 {
		errs = append(errs, fmt.Errorf("indicator size must not be negative (got %d)", s.Size))
	}
	return errors.Join(errs...)
}

// Mark is one indicator shape.
type Mark struct {
	Index   int
	Active  bool
	Opacity float64
}

// IndicatorMarks returns one mark per page, or nil when nothing is drawn.
func IndicatorMarks(active, count int, s IndicatorStyle) []Mark {
	if s.Type == IndicatorNone || s.Type == "" || count <= 0 {
		return nil
	}
	marks := make([]Mark, count)
	for i := range marks {
		marks[i] = Mark{Index: i, Opacity: s.InactiveOpacity}
		if i == active {
			marks[i].Active = true
			marks[i].Opacity = s.ActiveOpacity
		}
	}
	return marks
}
