package tui

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/pocket-console/internal/display"
)

// ErrTerminalTooSmall is returned by Init when the bezel does not fit.
var ErrTerminalTooSmall = errors.New("tui: terminal too small")

// Minimum terminal size: the 64x32 block display, its border, the status
// line and the help line.
const (
	MinWidth  = 66
	MinHeight = 36
)

// Screen is the terminal display panel. Presented frames are kept until the
// next View.
type Screen struct {
	frame *display.Canvas
	size  func() (int, int, error)
}

// NewScreen creates a panel sized against standard output.
func NewScreen() *Screen {
	return &Screen{
		frame: display.NewScreenCanvas(),
		size: func() (int, int, error) {
			return term.GetSize(int(os.Stdout.Fd()))
		},
	}
}

// Init checks that the terminal can show the whole display.
func (s *Screen) Init() error {
	w, h, err := s.size()
	if err != nil {
		return fmt.Errorf("tui: cannot read terminal size: %w", err)
	}
	if w < MinWidth || h < MinHeight {
		return fmt.Errorf("%w: %dx%d, need %dx%d", ErrTerminalTooSmall, w, h, MinWidth, MinHeight)
	}
	return nil
}

// Present keeps a copy of the frame.
func (s *Screen) Present(c *display.Canvas) error {
	s.frame.CopyFrom(c)
	return nil
}

// Frame returns the last presented frame.
func (s *Screen) Frame() *display.Canvas {
	return s.frame
}
