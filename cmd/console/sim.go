package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-console/internal/platform/headless"
	"github.com/vovakirdan/pocket-console/internal/render"
)

var flagBlocks bool

var simCmd = &cobra.Command{
	Use:   "sim <script>",
	Short: "Run a scripted input session",
	Long: `Boot the console with a synthetic clock, play a YAML input script and
print the last frame.

Each step holds the named buttons and stick direction for a number of
ticks; everything else is released.

  steps:
    - hold: [white]
    - {}
    - hold: [blue]
      ticks: 1
    - x: left
      ticks: 10

Examples:
  console sim ./place.yaml
  console sim ./dodge.yaml --rules baseline --seed 7 --blocks`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().BoolVar(&flagBlocks, "blocks", false, "Print the frame as block glyphs")
}

func runSim(cmd *cobra.Command, args []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}
	script, err := headless.LoadScript(args[0])
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	s := seed()
	logger.Info("sim", "rules", rules.Name, "seed", s, "ticks", script.TotalTicks())

	res, err := headless.NewRunner(rules, render.Frame, s, logger).Run(cmd.Context(), script)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagBlocks {
		fmt.Fprintln(out, res.Frame.Blocks())
	} else {
		fmt.Fprintln(out, res.Frame.String())
	}
	fmt.Fprintf(out, "mode: %s  ticks: %d  score: %d  best: %d\n",
		res.Snapshot.Mode, res.Ticks, res.Snapshot.RoboDodge.Score, res.Snapshot.Best)
	return nil
}
