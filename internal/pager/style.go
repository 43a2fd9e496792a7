package pager

import (
	"errors"
	"fmt"
	"time"
)

// Curve names the animation applied when layout values change.
type Curve string

const (
	CurveSpring Curve = "spring"
	CurveNone   Curve = "none"
)

// Animation describes how the renderer eases between layouts.
type Animation struct {
	Curve     Curve
	Frequency float64 // spring angular frequency
	Damping   float64 // spring damping ratio
	FPS       int
}

// FrameInterval is the time between animation frames.
func (a Animation) FrameInterval() time.Duration {
	if a.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(a.FPS)
}

// Style holds the geometry of the pager. Lengths are in terminal cells.
type Style struct {
	InterPagePadding float64
	PageWidth        float64
	PageHeight       float64
	MaxPage          int // only used to park pages far off-screen
	FocusedScale     float64
	UnfocusedScale   float64
	Animation        Animation
}

// DefaultStyle returns the style used when no configuration is given.
func DefaultStyle() Style {
	return Style{
		InterPagePadding: 4,
		PageWidth:        40,
		PageHeight:       12,
		MaxPage:          10,
		FocusedScale:     1,
		UnfocusedScale:   0.8,
		Animation: Animation{
			Curve:     CurveSpring,
			Frequency: 8,
			Damping:   0.8,
			FPS:       60,
		},
	}
}

// PageOffset is the distance between the centres of adjacent pages.
func (s Style) PageOffset() float64 {
	return s.PageWidth + s.InterPagePadding
}

// LargePageOffset is where pages outside the window are parked.
func (s Style) LargePageOffset() float64 {
	return s.PageOffset() * float64(s.MaxPage+1)
}

// Validate reports every field that cannot be rendered.
func (s Style) Validate() error {
	var errs []error
	if s.PageWidth < 0 || s.PageHeight < 0 {
		errs = append(errs, fmt.Errorf("page size must not be negative (got %gx%g)", s.PageWidth, s.PageHeight))
	}
	if s.InterPagePadding < 0 {
		errs = append(errs, fmt.Errorf("inter-page padding must not be negative (got %g)", s.InterPagePadding))
	}
	if s.MaxPage < 0 {
		errs = append(errs, fmt.Errorf("max page must not be negative (got %d)", s.MaxPage))
	}
	if s.FocusedScale < 0 || s.UnfocusedScale < 0 {
		errs = append(errs, fmt.Errorf("scales must not be negative (got %g/%g)", s.FocusedScale, s.UnfocusedScale))
	}
	switch s.Animation.Curve {
	case CurveSpring:
		if s.Animation.Frequency <= 0 {
			errs = append(errs, fmt.Errorf("spring frequency must be positive (got %g)", s.Animation.Frequency))
		}
		if s.Animation.Damping < 0 {
			errs = append(errs, fmt.Errorf("spring damping must not be negative (got %g)", s.Animation.Damping))
		}
	case CurveNone:
	default:
		errs = append(errs, fmt.Errorf("unknown animation curve %q", s.Animation.Curve))
	}
	return errors.Join(errs...)
}
