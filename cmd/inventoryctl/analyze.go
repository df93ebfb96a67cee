package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nume-crypto/inventory-privacy/optimizer"
	"github.com/nume-crypto/inventory-privacy/optimizer/democircuits"
	"github.com/nume-crypto/inventory-privacy/optimizer/schedule"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [circuit...]",
	Short: "Scan demo circuit traces for optimizable patterns without modifying them",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = democircuits.Names()
		}

		out := cmd.OutOrStdout()
		for _, name := range names {
			build, ok := democircuits.ByName(name)
			if !ok {
				return fmt.Errorf("unknown circuit %q (known: %v)", name, democircuits.Names())
			}

			matrix := build()
			opt := optimizer.FromMatrix(matrix)
			fmt.Fprintf(out, "── %s ──\n", name)
			fmt.Fprintln(out, opt.Stats().String())

			sched := schedule.Analyze(matrix)
			fmt.Fprintf(out, "  parallel solving: depth %d, max width %d\n", sched.Depth, sched.Width)

			reports := opt.Analyze()
			if len(reports) == 0 {
				fmt.Fprintln(out, "  no optimizable patterns found")
			}
			for _, report := range reports {
				fmt.Fprintf(out, "  %s: %d patterns, %d estimated savings\n", report.PassName, report.PatternsFound, report.EstimatedSavings)
				for _, finding := range report.Findings {
					fmt.Fprintf(out, "    - %s\n", finding)
				}
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}
