package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/rolemix/internal/cli/formatter"
	"github.com/alexanderramin/rolemix/internal/importer"
	"github.com/spf13/cobra"
)

const stdioPath = "-"

func newExportCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [PROFILE]",
		Short: "Export a profile as JSON",
		Long: `Export a profile (the active one by default) as pretty-printed JSON.
Without --output the file is written to role-profile-<millis>.json in the
current directory. Use --output - to print to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProfileID(app, argOrEmpty(args))
			if err != nil {
				return err
			}
			text, err := app.Store.Export(id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output == stdioPath {
				fmt.Fprintln(out, text)
				return nil
			}
			if output == "" {
				output = importer.ExportFileName(app.now())
			}
			if err := os.WriteFile(output, []byte(text+"\n"), 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("Profile exported successfully:"), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (- for stdout)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a profile exported as JSON (- reads stdin)",
		Long: `Import a profile from a JSON export. The profile gets a new id and
fresh timestamps, is appended to the list, and becomes active. Shape problems
that can be repaired (weights out of range, unexpected role count) are
reported as warnings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var (
				data []byte
				err  error
			)
			if args[0] == stdioPath {
				data, err = io.ReadAll(app.stdin())
			} else {
				data, err = importer.ReadFile(args[0])
			}
			if err != nil {
				fmt.Fprintln(out, formatter.StyleRed.Render("Failed to import profile"))
				return err
			}

			res, err := app.Store.Import(cmd.Context(), data)
			if err != nil {
				fmt.Fprintln(out, formatter.StyleRed.Render("Failed to import profile"))
				return err
			}

			for _, w := range res.Warnings {
				fmt.Fprintf(out, "%s %v\n", formatter.StyleYellow.Render("warning:"), w)
			}
			fmt.Fprintf(out, "%s %s %s\n",
				formatter.StyleGreen.Render("Profile imported successfully:"),
				formatter.Bold(res.Profile.Name), formatter.Dim(res.Profile.DisplayID()))
			return nil
		},
	}
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Aliases: []string{"edit"},
		Short:   "Open the interactive weight editor",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.runTUI()
		},
	}
}
