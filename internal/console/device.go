package console

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-console/internal/config"
	"github.com/vovakirdan/pocket-console/internal/core"
	"github.com/vovakirdan/pocket-console/internal/display"
	"github.com/vovakirdan/pocket-console/internal/games/tictactoe"
	"github.com/vovakirdan/pocket-console/internal/hal"
)

// Game identifiers used by the scoreboard.
const (
	GameRoboDodge = "robododge"
	GameTicTacToe = "tictactoe"
)

// ErrDisplayInit is returned by Boot when the display cannot be brought up.
// The device cannot run without it and must halt.
var ErrDisplayInit = errors.New("console: display init failed")

// ErrNotBooted is returned by Step before a successful Boot.
var ErrNotBooted = errors.New("console: device not booted")

// RenderFunc draws one frame of the given state.
type RenderFunc func(c *display.Canvas, s Snapshot)

// Scoreboard records finished games for the session.
type Scoreboard interface {
	SaveScore(gameID string, score int) (int64, error)
	HighScore(gameID string) (int, error)
	SaveMatch(outcome string, moves int) (int64, error)
}

// Device is the firmware main loop: it gates ticks to a fixed cadence,
// samples the pins, advances the machine and presents a frame.
type Device struct {
	pins    hal.Pins
	disp    hal.Display
	render  RenderFunc
	gate    *core.FrameGate
	sampler *core.Sampler
	machine *Machine
	canvas  *display.Canvas
	board   Scoreboard
	logger  *log.Logger
	booted  bool
	ticks   uint64
}

// Option configures a Device.
type Option func(*Device)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(d *Device) {
		d.logger = l
	}
}

// WithScoreboard records scores and match results to sb.
func WithScoreboard(sb Scoreboard) Option {
	return func(d *Device) {
		d.board = sb
	}
}

// NewDevice wires a device for the given ruleset.
func NewDevice(rules config.Ruleset, pins hal.Pins, disp hal.Display, render RenderFunc, seed int64, opts ...Option) *Device {
	th := core.Thresholds{Low: rules.Joystick.LowThreshold, High: rules.Joystick.HighThreshold}
	d := &Device{
		pins:    pins,
		disp:    disp,
		render:  render,
		gate:    core.NewFrameGate(rules.Tick()),
		sampler: core.NewSampler(th),
		machine: NewMachine(rules, seed),
		canvas:  display.NewScreenCanvas(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Boot initializes the display and presents the main menu.
func (d *Device) Boot() error {
	if err := d.disp.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrDisplayInit, err)
	}
	d.booted = true
	d.logger.Info("booted", "mode", d.machine.Mode(), "tick", d.gate.Interval())
	return d.present()
}

// Step runs one loop iteration if a tick is due at now. It reports whether
// a tick ran; early polls return immediately.
func (d *Device) Step(now time.Time) (bool, error) {
	if !d.booted {
		return false, ErrNotBooted
	}
	dt, ok := d.gate.Ready(now)
	if !ok {
		return false, nil
	}
	d.ticks++

	frame := d.sampler.Sample(d.pins)
	tr := d.machine.Tick(frame, dt)
	d.observe(tr)

	return true, d.present()
}

// Machine returns the state machine.
func (d *Device) Machine() *Machine {
	return d.machine
}

// Canvas returns the frame buffer of the last tick.
func (d *Device) Canvas() *display.Canvas {
	return d.canvas
}

// Ticks returns how many ticks have run since boot.
func (d *Device) Ticks() uint64 {
	return d.ticks
}

// Interval returns the tick interval.
func (d *Device) Interval() time.Duration {
	return d.gate.Interval()
}

func (d *Device) present() error {
	d.canvas.Clear()
	if d.render != nil {
		d.render(d.canvas, d.machine.Snapshot())
	}
	if err := d.disp.Present(d.canvas); err != nil {
		return fmt.Errorf("console: present frame: %w", err)
	}
	return nil
}

// observe logs mode changes and records finished games.
func (d *Device) observe(tr Transition) {
	if tr.Changed() {
		d.logger.Debug("mode", "from", tr.From, "to", tr.To, "tick", d.ticks)
	}

	switch tr.Event {
	case EventPlayerDied:
		d.recordScore(d.machine.RoboDodge().Score())
	case EventMatchOver:
		d.recordMatch(d.machine.TicTacToe())
	}
}

func (d *Device) recordScore(score int) {
	best := max(d.machine.Best(), score)
	if d.board != nil {
		if _, err := d.board.SaveScore(GameRoboDodge, score); err != nil {
			d.logger.Warn("could not save score", "error", err)
		} else if high, err := d.board.HighScore(GameRoboDodge); err != nil {
			d.logger.Warn("could not read high score", "error", err)
		} else {
			best = high
		}
	}
	d.machine.SetBest(best)
	d.logger.Info("score", "game", GameRoboDodge, "score", score, "best", best)
}

func (d *Device) recordMatch(g *tictactoe.Game) {
	outcome := g.Outcome().String()
	moves := g.Snapshot().Moves
	if d.board != nil {
		if _, err := d.board.SaveMatch(outcome, moves); err != nil {
			d.logger.Warn("could not save match", "error", err)
		}
	}
	d.logger.Info("match", "game", GameTicTacToe, "outcome", outcome, "moves", moves)
}
