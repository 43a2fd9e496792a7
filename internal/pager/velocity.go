package pager

import "time"

// DecelerationRate is the per-millisecond velocity decay used to project
// where a released drag would come to rest.
const DecelerationRate = 0.998

// sampleWindow bounds how far back samples count towards the velocity.
const sampleWindow = 100 * time.Millisecond

type sample struct {
	at  time.Time
	pos Vector
}

// Tracker estimates pointer velocity from recent position samples.
type Tracker struct {
	now     func() time.Time
	samples []sample
}

// NewTracker creates a tracker reading the wall clock.
func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// NewTrackerWithClock creates a tracker with an injected clock.
func NewTrackerWithClock(now func() time.Time) *Tracker {
	return &Tracker{now: now}
}

// Reset drops all samples.
func (t *Tracker) Reset() {
	t.samples = t.samples[:0]
}

// Add records the pointer position at the current time.
func (t *Tracker) Add(pos Vector) {
	now := t.now()
	t.samples = append(t.samples, sample{at: now, pos: pos})

	// Drop samples that fell out of the window, keep at least two
	cut := 0
	for cut < len(t.samples)-2 && now.Sub(t.samples[cut].at) > sampleWindow {
		cut++
	}
	if cut > 0 {
		t.samples = append(t.samples[:0], t.samples[cut:]...)
	}
}

// Velocity returns the pointer velocity in cells per second.
func (t *Tracker) Velocity() Vector {
	if len(t.samples) < 2 {
		return Vector{}
	}
	first, last := t.samples[0], t.samples[len(t.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return Vector{}
	}
	return Vector{
		DX: (last.pos.DX - first.pos.DX) / dt,
		DY: (last.pos.DY - first.pos.DY) / dt,
	}
}

// Predicted projects translation forward by the current velocity.
func (t *Tracker) Predicted(translation Vector) Vector {
	v := t.Velocity()
	k := projection()
	return Vector{
		DX: translation.DX + v.DX*k,
		DY: translation.DY + v.DY*k,
	}
}

// projection is the distance travelled per unit of velocity (cells/s)
// while decelerating at DecelerationRate, in seconds.
func projection() float64 {
	return DecelerationRate / (1 - DecelerationRate) / 1000
}
