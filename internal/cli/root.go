package cli

import (
	"encoding/json"
	"fmt"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/analysis"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service interfaces the CLI commands run against.
// Policy mirrors the thresholds the analysis service was built with, so
// formatting matches classification.
type App struct {
	Import   service.ImportService
	Analysis service.AnalysisService
	Policy   analysis.Policy
}

// NewRootCmd creates the top-level "compass" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "compass",
		Short:         "Team capacity and allocation conflict analyzer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newImportCmd(app),
		newUtilizationCmd(app),
		newValidateCmd(app),
		newConflictsCmd(app),
		newRecommendCmd(app),
		newTrendsCmd(app),
		newDepsCmd(app),
		newOptimizeCmd(app),
	)

	return root
}

// printJSON writes the report as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
