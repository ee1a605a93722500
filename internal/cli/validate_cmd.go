package cli

import (
	"context"
	"fmt"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the stored allocation set for consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Analysis.Validate(context.Background())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatValidation(result))
			if !result.IsValid {
				return fmt.Errorf("allocation set has %d budget errors", len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")

	return cmd
}
