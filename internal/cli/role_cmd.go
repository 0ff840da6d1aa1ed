package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/rolemix/internal/cli/formatter"
	"github.com/alexanderramin/rolemix/internal/domain"
	"github.com/alexanderramin/rolemix/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRoleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "role",
		Aliases: []string{"roles", "r"},
		Short:   "Inspect and edit roles of the active profile",
	}

	cmd.AddCommand(
		newRoleListCmd(app),
		newRoleShowCmd(app),
		newRoleSetCmd(app),
		newRoleEditCmd(app),
	)

	return cmd
}

func activeProfile(app *App) (*domain.Profile, error) {
	p := app.Store.Active()
	if p == nil {
		return nil, store.ErrNoActiveProfile
	}
	return p, nil
}

func newRoleListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List roles with weights and shares",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := activeProfile(app)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(p.Name))
			fmt.Fprint(out, formatter.FormatRoleTable(p.Roles, -1))
			fmt.Fprintln(out, formatter.RenderTotal(p.TotalWeight()))
			return nil
		},
	}
}

func newRoleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ROLE",
		Short: "Show one role in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := activeProfile(app)
			if err != nil {
				return err
			}
			r, err := resolveRole(p, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRole(r))
			return nil
		},
	}
}

func newRoleSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set ROLE WEIGHT",
		Short: "Set a role weight (clamped to 0-100)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := activeProfile(app)
			if err != nil {
				return err
			}
			r, err := resolveRole(p, args[0])
			if err != nil {
				return err
			}
			weight, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("weight must be a whole number, got %q", args[1])
			}
			if err := app.Store.SetWeight(cmd.Context(), r.ID, weight); err != nil {
				return err
			}
			return printRoleWeight(cmd, app, r.ID)
		},
	}
}

// rolePatchFlags binds one flag per editable role field. Only flags the
// user actually passed end up in the patch.
type rolePatchFlags struct {
	name, essence, method, companyType, color string
	weight                                    int
}

func (f *rolePatchFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "role name")
	fs.StringVar(&f.essence, "essence", "", "short essence")
	fs.StringVar(&f.method, "method", "", "method label")
	fs.StringVar(&f.companyType, "company-type", "", "company type")
	fs.StringVar(&f.color, "color", "", `palette color, e.g. "hsl(168, 45%, 32%)"`)
	fs.IntVarP(&f.weight, "weight", "w", 0, "weight (clamped to 0-100)")
}

func (f *rolePatchFlags) patch(fs *pflag.FlagSet) domain.RolePatch {
	var p domain.RolePatch
	strField := func(flag string, v *string, dst **string) {
		if fs.Changed(flag) {
			*dst = v
		}
	}
	strField("name", &f.name, &p.Name)
	strField("essence", &f.essence, &p.Essence)
	strField("method", &f.method, &p.Method)
	strField("company-type", &f.companyType, &p.CompanyType)
	strField("color", &f.color, &p.Color)
	if fs.Changed("weight") {
		p.Weight = &f.weight
	}
	return p
}

func newRoleEditCmd(app *App) *cobra.Command {
	var flags rolePatchFlags

	cmd := &cobra.Command{
		Use:   "edit ROLE",
		Short: "Edit role fields on the active profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := activeProfile(app)
			if err != nil {
				return err
			}
			r, err := resolveRole(p, args[0])
			if err != nil {
				return err
			}
			patch := flags.patch(cmd.Flags())
			if patch.IsEmpty() {
				return errors.New("nothing to edit: pass at least one field flag")
			}
			if err := app.Store.UpdateRole(cmd.Context(), r.ID, patch); err != nil {
				return err
			}
			updated, err := activeProfile(app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRole(updated.Roles[updated.RoleIndex(r.ID)]))
			return nil
		},
	}

	flags.bind(cmd.Flags())
	return cmd
}

func printRoleWeight(cmd *cobra.Command, app *App, roleID string) error {
	p, err := activeProfile(app)
	if err != nil {
		return err
	}
	r := p.Roles[p.RoleIndex(roleID)]
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d\n%s\n",
		formatter.RoleStyle(r.Color).Render(r.Name),
		formatter.RenderWeightBar(r.Weight, 20, r.Color),
		r.Weight,
		formatter.RenderTotal(p.TotalWeight()))
	return nil
}
