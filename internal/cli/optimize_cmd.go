package cli

import (
	"context"
	"fmt"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newOptimizeCmd(app *App) *cobra.Command {
	var cycleRef string
	var target float64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Compute per-team deltas toward a utilization target",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Analysis.Optimize(context.Background(), cycleRef, target)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOptimization(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&cycleRef, "cycle", "", "Cycle ID or name")
	cmd.Flags().Float64Var(&target, "target", 0, "Target utilization percentage (default: policy target)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")

	return cmd
}
