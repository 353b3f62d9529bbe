package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-console/internal/config"
	"github.com/vovakirdan/pocket-console/internal/console"
	"github.com/vovakirdan/pocket-console/internal/core"
	"github.com/vovakirdan/pocket-console/internal/display"
	"github.com/vovakirdan/pocket-console/internal/hal"
)

// epoch is the synthetic power-on time.
var epoch = time.Unix(0, 0).UTC()

// Result is the state of the device after a script.
type Result struct {
	Frame    *display.Canvas
	Snapshot console.Snapshot
	Ticks    uint64
	Frames   int
}

// Runner plays scripts on a fresh device.
type Runner struct {
	rules  config.Ruleset
	render console.RenderFunc
	seed   int64
	opts   []console.Option
	logger *log.Logger
}

// NewRunner creates a runner. opts are passed to every device it builds.
func NewRunner(rules config.Ruleset, render console.RenderFunc, seed int64, logger *log.Logger, opts ...console.Option) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{rules: rules, render: render, seed: seed, opts: opts, logger: logger}
}

// Run boots a device and feeds it the script one tick at a time.
func (r *Runner) Run(ctx context.Context, s Script) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	pins := hal.NewVirtualPins()
	disp := hal.NewMemoryDisplay()
	opts := append([]console.Option{console.WithLogger(r.logger)}, r.opts...)
	dev := console.NewDevice(r.rules, pins, disp, r.render, r.seed, opts...)
	if err := dev.Boot(); err != nil {
		return nil, err
	}

	now := epoch
	interval := dev.Interval()
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		apply(pins, st)
		for n := 0; n < st.ticks(); n++ {
			if _, err := dev.Step(now); err != nil {
				return nil, fmt.Errorf("headless: step %d: %w", i, err)
			}
			now = now.Add(interval)
		}
		r.logger.Debug("step", "index", i, "mode", dev.Machine().Mode(), "ticks", dev.Ticks())
	}

	return &Result{
		Frame:    disp.Frame(),
		Snapshot: dev.Machine().Snapshot(),
		Ticks:    dev.Ticks(),
		Frames:   disp.Frames(),
	}, nil
}

// apply sets the lines for one step. The script was validated already.
func apply(pins *hal.VirtualPins, st Step) {
	pins.ReleaseAll()
	bs, _ := st.buttons()
	for _, b := range bs {
		pins.Press(b)
	}
	x, _ := zone(st.X, "left", "right")
	y, _ := zone(st.Y, "up", "down")
	pins.Tilt(core.AxisX, x)
	pins.Tilt(core.AxisY, y)
}
