package window

import (
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/pocket-console/internal/config"
	"github.com/vovakirdan/pocket-console/internal/console"
	"github.com/vovakirdan/pocket-console/internal/core"
	"github.com/vovakirdan/pocket-console/internal/display"
	"github.com/vovakirdan/pocket-console/internal/hal"
)

// DefaultScale is the window pixels per display pixel.
const DefaultScale = 6

// line is one virtual input driven by a set of keys.
type line struct {
	keys    []ebiten.Key
	buttons []core.Button
	axis    core.Axis
	dir     core.Direction
}

func keyset(ks ...ebiten.Key) []ebiten.Key { return ks }

// linesFor mirrors the terminal key layout of each control scheme.
func linesFor(steering config.Steering) []line {
	if steering == config.SteeringJoystick {
		return []line{
			{keys: keyset(ebiten.KeyArrowUp, ebiten.KeyK), axis: core.AxisY, dir: core.DirLow},
			{keys: keyset(ebiten.KeyArrowDown, ebiten.KeyJ), axis: core.AxisY, dir: core.DirHigh},
			{keys: keyset(ebiten.KeyArrowLeft, ebiten.KeyH), axis: core.AxisX, dir: core.DirLow},
			{keys: keyset(ebiten.KeyArrowRight, ebiten.KeyL), axis: core.AxisX, dir: core.DirHigh},
			{keys: keyset(ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyR), buttons: []core.Button{core.ButtonRed}},
			{keys: keyset(ebiten.KeyW), buttons: []core.Button{core.ButtonWhite}},
			{keys: keyset(ebiten.KeyY), buttons: []core.Button{core.ButtonYellow}},
			{keys: keyset(ebiten.KeyB, ebiten.KeyX), buttons: []core.Button{core.ButtonBlue}},
			{keys: keyset(ebiten.KeyS), buttons: []core.Button{core.ButtonStick}},
			{keys: keyset(ebiten.KeyP, ebiten.KeyEscape), buttons: []core.Button{core.ButtonWhite, core.ButtonRed}},
		}
	}
	return []line{
		{keys: keyset(ebiten.KeyArrowUp, ebiten.KeySpace, ebiten.KeyR), buttons: []core.Button{core.ButtonRed}},
		{keys: keyset(ebiten.KeyArrowDown, ebiten.KeyW), buttons: []core.Button{core.ButtonWhite}},
		{keys: keyset(ebiten.KeyArrowLeft, ebiten.KeyY), buttons: []core.Button{core.ButtonYellow}},
		{keys: keyset(ebiten.KeyArrowRight, ebiten.KeyB), buttons: []core.Button{core.ButtonBlue}},
		{keys: keyset(ebiten.KeyS), buttons: []core.Button{core.ButtonStick}},
		{keys: keyset(ebiten.KeyEnter), buttons: []core.Button{core.ButtonYellow, core.ButtonBlue}},
		{keys: keyset(ebiten.KeyP, ebiten.KeyEscape), buttons: []core.Button{core.ButtonWhite, core.ButtonRed}},
	}
}

// Options wires the window to a booted device.
type Options struct {
	Device *console.Device
	Pins   *hal.VirtualPins
	Panel  *Panel
	Rules  config.Ruleset
	Logger *log.Logger
}

// Game implements ebiten.Game for the console.
type Game struct {
	device *console.Device
	pins   *hal.VirtualPins
	panel  *Panel
	frame  *display.Canvas
	lines  []line
	logger *log.Logger
}

// NewGame creates the window game.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		device: opts.Device,
		pins:   opts.Pins,
		panel:  opts.Panel,
		frame:  opts.Device.Canvas(),
		lines:  linesFor(opts.Rules.Steering),
		logger: logger,
	}
}

// Update drives the lines from the keyboard and polls the device.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		if err := clipboard.WriteAll(g.frame.Blocks()); err != nil {
			g.logger.Warn("clipboard unavailable", "error", err)
		}
	}

	g.pins.ReleaseAll()
	for _, l := range g.lines {
		if !anyPressed(l.keys) {
			continue
		}
		if l.dir != core.DirNeutral {
			g.pins.Tilt(l.axis, l.dir)
			continue
		}
		for _, b := range l.buttons {
			g.pins.Press(b)
		}
	}

	if _, err := g.device.Step(time.Now()); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func anyPressed(ks []ebiten.Key) bool {
	for _, k := range ks {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Draw uploads the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.panel.Pixels())
}

// Layout keeps the logical screen at the display resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.ScreenW, core.ScreenH
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	ebiten.SetWindowTitle("Pocket Console · " + opts.Rules.Name)
	ebiten.SetWindowSize(core.ScreenW*opts.Panel.scale, core.ScreenH*opts.Panel.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		return err
	}
	return nil
}
