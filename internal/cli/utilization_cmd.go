package cli

import (
	"context"
	"fmt"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newUtilizationCmd(app *App) *cobra.Command {
	var cycleRef string
	var teamRef string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "utilization",
		Short: "Show per-team capacity utilization for a cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if teamRef != "" {
				report, err := app.Analysis.TeamUtilization(ctx, cycleRef, teamRef)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(cmd, report)
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTeamUtilization(report, app.Policy.HealthyMinPct))
				return nil
			}

			reports, err := app.Analysis.Utilization(ctx, cycleRef)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, reports)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUtilization(reports, app.Policy.HealthyMinPct))
			return nil
		},
	}

	cmd.Flags().StringVar(&cycleRef, "cycle", "", "Cycle ID or name")
	cmd.Flags().StringVar(&teamRef, "team", "", "Limit to one team (ID or name)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")

	return cmd
}
