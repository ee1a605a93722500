package cli

import (
	"context"
	"fmt"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <snapshot.json>",
		Short: "Replace stored planning data with a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportSnapshot(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Imported %s, %s, %s, %s and %s.\n",
				formatter.Bold(fmt.Sprintf("%d teams", result.TeamCount)),
				formatter.Bold(fmt.Sprintf("%d cycles", result.CycleCount)),
				formatter.Bold(fmt.Sprintf("%d epics", result.EpicCount)),
				formatter.Bold(fmt.Sprintf("%d run work categories", result.RunWorkCount)),
				formatter.Bold(fmt.Sprintf("%d allocations", result.AllocationCount)))
			return nil
		},
	}
}
