package main

import (
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"

	"github.com/nume-crypto/inventory-privacy/constraint"
	"github.com/nume-crypto/inventory-privacy/internal/config"
	"github.com/nume-crypto/inventory-privacy/optimizer"
	"github.com/nume-crypto/inventory-privacy/optimizer/democircuits"
)

var optimizeConfigName string
var optimizeFormat string

// optimizeReport is the CBOR-serializable projection of optimizer.Result:
// plain numeric/string fields only, since Result.Matrix carries fr.Element
// terms that have no CBOR encoding of their own.
type optimizeReport struct {
	Circuit             string   `cbor:"circuit"`
	OriginalConstraints int      `cbor:"original_constraints"`
	FinalConstraints    int      `cbor:"final_constraints"`
	ConstraintsReduced  int      `cbor:"constraints_reduced"`
	ReductionPercentage float64  `cbor:"reduction_percentage"`
	Passes              []string `cbor:"passes"`
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize [circuit...]",
	Short: "Run the R1CS optimizer's reduction passes over one or more demo circuit traces",
	Long: "Builds a representative constraint matrix for each named circuit (default: all of " +
		"item-exists, withdraw, deposit, transfer) and reports its constraint count before and " +
		"after running the configured optimization passes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = democircuits.Names()
		}

		// an explicit --preset flag always wins; otherwise fall back to
		// whatever Load resolved from the config file / INVENTORY_OPTIMIZER_LEVEL.
		presetName := optimizeConfigName
		if !cmd.Flags().Changed("preset") {
			resolved, err := config.Load(configPath, config.Config{})
			if err != nil {
				return err
			}
			if resolved.OptimizerLevel != "" {
				presetName = resolved.OptimizerLevel
			}
		}

		optConfig, err := optimizerConfigByName(presetName)
		if err != nil {
			return err
		}

		for _, name := range names {
			build, ok := democircuits.ByName(name)
			if !ok {
				return fmt.Errorf("unknown circuit %q (known: %v)", name, democircuits.Names())
			}
			if err := runOptimize(cmd, name, build(), optConfig, optimizeFormat); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeConfigName, "preset", "default", "pass preset: default, safe, aggressive")
	optimizeCmd.Flags().StringVar(&optimizeFormat, "format", "text", "output format: text, cbor")
}

func optimizerConfigByName(name string) (optimizer.Config, error) {
	switch name {
	case "default":
		return optimizer.DefaultConfig(), nil
	case "safe":
		return optimizer.SafeConfig(), nil
	case "aggressive":
		return optimizer.AggressiveConfig(), nil
	default:
		return optimizer.Config{}, fmt.Errorf("unknown optimizer config %q (known: default, safe, aggressive)", name)
	}
}

func runOptimize(cmd *cobra.Command, name string, matrix constraint.Matrix, config optimizer.Config, format string) error {
	out := cmd.OutOrStdout()
	opt := optimizer.FromMatrix(matrix).WithConfig(config)
	result := opt.Optimize()

	if format == "cbor" {
		report := optimizeReport{
			Circuit:             name,
			OriginalConstraints: result.OriginalConstraints,
			FinalConstraints:    result.FinalConstraints,
			ConstraintsReduced:  result.ConstraintsReduced(),
			ReductionPercentage: result.ReductionPercentage(),
		}
		for _, r := range result.PassReports {
			report.Passes = append(report.Passes, r.PassName)
		}
		encoded, err := cbor.Marshal(report)
		if err != nil {
			return fmt.Errorf("cbor encode: %w", err)
		}
		fmt.Fprintln(out, hex.EncodeToString(encoded))
		return nil
	}

	fmt.Fprintf(out, "── %s ──\n", name)
	fmt.Fprintln(out, opt.Stats().String())
	fmt.Fprintf(out, "  after:      %6d constraints\n", result.FinalConstraints)
	fmt.Fprintf(out, "  reduced:    %6d (%.2f%%)\n", result.ConstraintsReduced(), result.ReductionPercentage())

	for _, report := range result.PassReports {
		if report.EstimatedSavings > 0 {
			fmt.Fprintf(out, "    %s: %d patterns, %d savings\n", report.PassName, report.PatternsFound, report.EstimatedSavings)
		}
	}
	fmt.Fprintln(out)
	return nil
}
