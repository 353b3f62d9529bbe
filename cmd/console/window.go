package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-console/internal/console"
	"github.com/vovakirdan/pocket-console/internal/hal"
	"github.com/vovakirdan/pocket-console/internal/platform/window"
	"github.com/vovakirdan/pocket-console/internal/render"
	"github.com/vovakirdan/pocket-console/internal/storage"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Power on the console in a desktop window.

Keys are the same as in the terminal; lines stay down exactly while a key
is held, so the long press works as on the hardware.
F2 copies the display to the clipboard, Q powers off.

Examples:
  console window
  console window --rules baseline --scale 8`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", window.DefaultScale, "Window pixels per display pixel")
}

func runWindow(cmd *cobra.Command, args []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := []console.Option{console.WithLogger(logger)}
	store, err := storage.OpenSession()
	if err != nil {
		logger.Warn("could not open session scores", "error", err)
	} else {
		defer store.Close()
		opts = append(opts, console.WithScoreboard(store))
	}

	pins := hal.NewVirtualPins()
	panel := window.NewPanel(flagScale)
	dev := console.NewDevice(rules, pins, panel, render.Frame, seed(), opts...)
	if err := dev.Boot(); err != nil {
		logger.Error("boot failed", "error", err)
		return err
	}

	return window.Run(window.Options{
		Device: dev,
		Pins:   pins,
		Panel:  panel,
		Rules:  rules,
		Logger: logger,
	})
}
