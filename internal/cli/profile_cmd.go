package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/rolemix/internal/cli/formatter"
	"github.com/alexanderramin/rolemix/internal/domain"
	"github.com/spf13/cobra"
)

const (
	defaultNewProfileName        = "New Profile"
	defaultNewProfileDescription = "A new role mix"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"profiles", "p"},
		Short:   "Manage role profiles",
	}

	cmd.AddCommand(
		newProfileListCmd(app),
		newProfileShowCmd(app),
		newProfileCreateCmd(app),
		newProfileDuplicateCmd(app),
		newProfileDeleteCmd(app),
		newProfileUseCmd(app),
		newProfileUpdateCmd(app),
	)

	return cmd
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all profiles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfileList(app.Store.Profiles(), app.Store.ActiveID()))
			return nil
		},
	}
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [PROFILE]",
		Short: "Show a profile (defaults to the active one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProfileID(app, argOrEmpty(args))
			if err != nil {
				return err
			}
			p, err := app.Store.Profile(id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileCreateCmd(app *App) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create [NAME]",
		Short: "Create a profile with all weights at zero and make it active",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := argOrEmpty(args)
			if name == "" && app.interactive() {
				form := profileForm("New Profile", &name, &description)
				if err := form.Run(); err != nil {
					return fmt.Errorf("profile form: %w", err)
				}
			}
			name = domain.CoalesceStr(name, defaultNewProfileName)
			if !cmd.Flags().Changed("description") && description == "" {
				description = defaultNewProfileDescription
			}

			p, err := app.Store.Create(cmd.Context(), name, description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				formatter.StyleGreen.Render("New profile created:"), formatter.Bold(p.Name), formatter.Dim(p.DisplayID()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "profile description")
	return cmd
}

func newProfileDuplicateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "duplicate [PROFILE]",
		Aliases: []string{"dup", "copy"},
		Short:   "Copy a profile, weights included, and make the copy active",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProfileID(app, argOrEmpty(args))
			if err != nil {
				return err
			}
			p, err := app.Store.Duplicate(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				formatter.StyleGreen.Render("Duplicated as"), formatter.Bold(p.Name), formatter.Dim(p.DisplayID()))
			return nil
		},
	}
}

var errOnlyProfile = errors.New("cannot delete the only profile")

func newProfileDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete PROFILE",
		Aliases: []string{"rm"},
		Short:   "Delete a profile",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProfileID(app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Store.Profile(id)
			if err != nil {
				return err
			}
			if len(app.Store.Profiles()) <= 1 {
				return errOnlyProfile
			}
			if err := app.Store.Delete(cmd.Context(), id); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Deleted %s\n", formatter.Bold(p.Name))
			if active := app.Store.Active(); active != nil {
				fmt.Fprintf(out, "%s %s\n", formatter.Dim("Active profile:"), active.Name)
			}
			return nil
		},
	}
}

func newProfileUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "use PROFILE",
		Aliases: []string{"select"},
		Short:   "Make a profile the active one",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProfileID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Store.Select(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active profile: %s\n", formatter.Bold(app.Store.Active().Name))
			return nil
		},
	}
}

func newProfileUpdateCmd(app *App) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:     "update [PROFILE]",
		Aliases: []string{"rename"},
		Short:   "Change a profile's name or description",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProfileID(app, argOrEmpty(args))
			if err != nil {
				return err
			}

			var patch domain.ProfilePatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if patch.Name == nil && patch.Description == nil {
				return errors.New("nothing to update: pass --name or --description")
			}

			if err := app.Store.UpdateProfile(cmd.Context(), id, patch); err != nil {
				return err
			}
			p, err := app.Store.Profile(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", formatter.Bold(p.Name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "new name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	return cmd
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
