package cli

import (
	"io"
	"os"
	"time"

	"github.com/alexanderramin/rolemix/internal/store"
	"github.com/spf13/cobra"
)

// App holds what CLI commands need: the profile store and a few process
// hooks that tests replace.
type App struct {
	Store *store.Store

	// Now is the clock used for export file names. Defaults to time.Now.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// RunTUI starts the editor. Defaults to a full-screen tea.Program.
	RunTUI func(app *App) error

	// In is read by "import -". Defaults to os.Stdin.
	In io.Reader
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) stdin() io.Reader {
	if a.In != nil {
		return a.In
	}
	return os.Stdin
}

func (a *App) runTUI() error {
	if a.RunTUI != nil {
		return a.RunTUI(a)
	}
	return runEditor(a)
}

// NewRootCmd creates the top-level "rolemix" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "rolemix",
		Short:         "Weighted role archetype profiles with insights",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.interactive() {
				return app.runTUI()
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newProfileCmd(app),
		newRoleCmd(app),
		newWeightsCmd(app),
		newInsightsCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newTUICmd(app),
	)

	return root
}
