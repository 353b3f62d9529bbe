package core

import "time"

// FrameGate paces the main loop. The loop polls it as often as it likes and
// only runs a tick once the interval has passed; early polls return at once.
type FrameGate struct {
	interval time.Duration
	last     time.Time
	started  bool
}

// NewFrameGate creates a gate that opens at most once per interval.
func NewFrameGate(interval time.Duration) *FrameGate {
	return &FrameGate{interval: interval}
}

// Interval returns the configured tick interval.
func (g *FrameGate) Interval() time.Duration {
	return g.interval
}

// Ready reports whether a tick is due at now. When it is, the gate records
// now and returns the time elapsed since the previous tick. The first call
// always opens and reports one interval.
func (g *FrameGate) Ready(now time.Time) (time.Duration, bool) {
	if !g.started {
		g.started = true
		g.last = now
		return g.interval, true
	}

	elapsed := now.Sub(g.last)
	if elapsed < g.interval {
		return 0, false
	}
	g.last = now
	return elapsed, true
}

// Reset forgets the previous tick so the next poll opens immediately.
func (g *FrameGate) Reset() {
	g.started = false
	g.last = time.Time{}
}
