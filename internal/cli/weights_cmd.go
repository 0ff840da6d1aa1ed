package cli

import (
	"fmt"

	"github.com/alexanderramin/rolemix/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWeightsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "weights",
		Aliases: []string{"w"},
		Short:   "Bulk weight operations on the active profile",
	}
	cmd.AddCommand(newNormalizeCmd(app), newSuggestCmd(app))
	return cmd
}

func newNormalizeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize",
		Short: "Rescale weights so they add up to 100",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := activeProfile(app); err != nil {
				return err
			}
			changed, err := app.Store.Normalize(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !changed {
				fmt.Fprintln(out, formatter.StyleYellow.Render("Total weight is 0; nothing to normalize."))
				return nil
			}
			p, err := activeProfile(app)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\n%s\n", formatter.StyleGreen.Render("Weights normalized"), formatter.RenderTotal(p.TotalWeight()))
			return nil
		},
	}
}

func newSuggestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "suggest",
		Aliases: []string{"balance"},
		Short:   "Replace weights with an even spread plus a little randomness",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.Store.SuggestBalance(cmd.Context()); err != nil {
				return err
			}
			p, err := activeProfile(app)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.StyleGreen.Render("Suggested a more balanced mix"))
			fmt.Fprint(out, formatter.FormatRoleTable(p.Roles, -1))
			fmt.Fprintln(out, formatter.RenderTotal(p.TotalWeight()))
			return nil
		},
	}
}
