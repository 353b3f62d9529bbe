package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-console/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in rulesets",
	Long:  `Shows every ruleset compiled into the console.`,
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available rulesets:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-10s  %-10s  %-10s  %s\n", "Name", "Escape", "Steering", "Shield")
	fmt.Fprintf(out, "  %-10s  %-10s  %-10s  %s\n", "----", "------", "--------", "------")

	for _, name := range config.Presets() {
		r, err := config.Load(name, "")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-10s  %-10s  %-10s  %t\n", r.Name, r.Escape, r.Steering, r.RoboDodge.ShieldEnabled)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'console run --rules <name>' to play.")
	return nil
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the resolved ruleset",
	Long: `Print the ruleset the console would boot with, after the preset, the
--config file and CONSOLE_* environment variables are applied.

The output is valid input for --config.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}
	data, err := config.Marshal(rules)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
