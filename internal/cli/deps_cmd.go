package cli

import (
	"context"
	"fmt"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDepsCmd(app *App) *cobra.Command {
	var cycleRef string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Analyze cross-team dependencies and bottlenecks for a cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Analysis.CrossTeam(context.Background(), cycleRef)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCrossTeam(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&cycleRef, "cycle", "", "Cycle ID or name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")

	return cmd
}
