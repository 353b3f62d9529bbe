package tui

import (
	"time"

	"github.com/vovakirdan/pocket-console/internal/core"
	"github.com/vovakirdan/pocket-console/internal/hal"
)

// defaultHold keeps a line down after its last key event. Terminals report
// presses and auto-repeats but never releases, so a line is held while
// repeats keep arriving and lets go shortly after they stop.
const defaultHold = 90 * time.Millisecond

// holder emulates line levels from key events.
type holder struct {
	pins    *hal.VirtualPins
	hold    time.Duration
	buttons [len(core.Buttons)]time.Time
	axes    [2]time.Time
}

func newHolder(pins *hal.VirtualPins, hold time.Duration) *holder {
	return &holder{pins: pins, hold: hold}
}

// press drives the line and (re)arms its release deadline.
func (h *holder) press(l Line, now time.Time) {
	until := now.Add(h.hold)
	if l.IsAxis() {
		h.pins.Tilt(l.Axis, l.Dir)
		h.axes[l.Axis] = until
		return
	}
	for _, b := range l.Buttons {
		h.pins.Press(b)
		h.buttons[b] = until
	}
}

// expire releases every line whose deadline has passed.
func (h *holder) expire(now time.Time) {
	for i, until := range h.buttons {
		if !until.IsZero() && now.After(until) {
			h.pins.Release(core.Button(i))
			h.buttons[i] = time.Time{}
		}
	}
	for i, until := range h.axes {
		if !until.IsZero() && now.After(until) {
			h.pins.Tilt(core.Axis(i), core.DirNeutral)
			h.axes[i] = time.Time{}
		}
	}
}
