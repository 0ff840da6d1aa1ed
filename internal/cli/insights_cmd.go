package cli

import (
	"fmt"

	"github.com/alexanderramin/rolemix/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newInsightsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "insights",
		Aliases: []string{"insight", "i"},
		Short:   "Show insights derived from the active profile",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := activeProfile(app); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatInsights(app.Store.Insights()))
			return nil
		},
	}
}
