package hal

import (
	"errors"

	"github.com/vovakirdan/pocket-console/internal/display"
)

// ErrNotInitialized is returned when a frame is presented before Init.
var ErrNotInitialized = errors.New("hal: display not initialized")

// MemoryDisplay keeps the last presented frame in memory. The headless
// runner and tests read frames back from it.
type MemoryDisplay struct {
	frame   *display.Canvas
	ready   bool
	frames  int
	initErr error
}

// NewMemoryDisplay creates a display whose Init succeeds.
func NewMemoryDisplay() *MemoryDisplay {
	return &MemoryDisplay{frame: display.NewScreenCanvas()}
}

// NewFailingDisplay creates a display whose Init fails with err.
func NewFailingDisplay(err error) *MemoryDisplay {
	d := NewMemoryDisplay()
	d.initErr = err
	return d
}

// Init implements Display.
func (d *MemoryDisplay) Init() error {
	if d.initErr != nil {
		return d.initErr
	}
	d.ready = true
	return nil
}

// Present implements Display.
func (d *MemoryDisplay) Present(c *display.Canvas) error {
	if !d.ready {
		return ErrNotInitialized
	}
	d.frame.CopyFrom(c)
	d.frames++
	return nil
}

// Frame returns the last presented frame.
func (d *MemoryDisplay) Frame() *display.Canvas {
	return d.frame
}

// Frames returns how many frames have been presented.
func (d *MemoryDisplay) Frames() int {
	return d.frames
}
