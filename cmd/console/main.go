// console emulates a two-game handheld console on the host.
//
// Usage:
//
//	console run               - Play in the terminal
//	console window            - Play in a desktop window
//	console sim <script>      - Play a scripted session and print the last frame
//	console presets           - List the built-in rulesets
//	console rules             - Print the resolved ruleset as YAML
//
// Global flags:
//
//	--rules <preset>   - Ruleset preset: classic or baseline (default: classic)
//	--config <path>    - Ruleset file overriding the preset
//	--seed <value>     - RNG seed for reproducible gameplay
//	--log <path>       - Append logs to a file
//	--debug            - Log mode changes and input steps
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-console/internal/config"
)

var (
	// Global flags
	flagRules  string
	flagConfig string
	flagSeed   int64
	flagLog    string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "console",
	Short: "Pocket Console - a two-game handheld, emulated",
	Long: `Pocket Console emulates a small handheld with a 128x64 monochrome
display, four buttons and a clickable joystick. It ships RoboDodge and
TicTacToe.

Available commands:
  run      - Play in the terminal
  window   - Play in a desktop window
  sim      - Run a scripted input session
  presets  - List the built-in rulesets
  rules    - Print the resolved ruleset

Examples:
  console run
  console run --rules baseline
  console window --scale 8
  console sim ./scripts/place.yaml
  console rules --rules baseline`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", config.DefaultPreset, "Ruleset preset: classic, baseline")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a ruleset YAML file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(rulesCmd)
}

// loadRules resolves the ruleset from the global flags.
func loadRules() (config.Ruleset, error) {
	return config.Load(flagRules, flagConfig)
}

// seed returns the RNG seed, drawing one from the clock when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger creates the process logger. Logs go to the --log file when set,
// otherwise to fallback. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "console",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
