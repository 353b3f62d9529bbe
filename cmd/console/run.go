package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-console/internal/console"
	"github.com/vovakirdan/pocket-console/internal/hal"
	"github.com/vovakirdan/pocket-console/internal/platform/tui"
	"github.com/vovakirdan/pocket-console/internal/render"
	"github.com/vovakirdan/pocket-console/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play in the terminal",
	Long: `Power on the console inside the terminal.

The display is drawn with block glyphs and needs a terminal of at least
66x36 cells.

Controls (buttons scheme, classic):
  ↑/r ↓/w ←/y →/b  - Red, White, Yellow, Blue
  Enter            - Yellow+Blue (place)
  P/Esc            - White+Red (pause)
  S                - Stick push

Controls (joystick scheme, baseline):
  Arrows/hjkl      - Stick
  Space/r          - Red
  w y b            - White, Yellow, Blue
  S                - Stick push (hold to leave a game)

  Ctrl+Y           - Copy the display to the clipboard
  ?                - Help
  Q/Ctrl+C         - Power off

Examples:
  console run
  console run --rules baseline --log console.log --debug`,
	Args: cobra.NoArgs,
	RunE: runTerminal,
}

func runTerminal(cmd *cobra.Command, args []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs only go to --log
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.OpenSession()
	if err != nil {
		logger.Warn("could not open session scores", "error", err)
		// Continue without storage - the device still works
	}
	opts := []console.Option{console.WithLogger(logger)}
	if store != nil {
		defer store.Close()
		opts = append(opts, console.WithScoreboard(store))
	}

	pins := hal.NewVirtualPins()
	screen := tui.NewScreen()
	dev := console.NewDevice(rules, pins, screen, render.Frame, seed(), opts...)
	if err := dev.Boot(); err != nil {
		logger.Error("boot failed", "error", err)
		return err
	}

	return tui.Run(tui.Options{
		Device: dev,
		Pins:   pins,
		Screen: screen,
		Store:  store,
		Rules:  rules,
		Logger: logger,
	})
}
