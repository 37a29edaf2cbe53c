package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"menuboard/internal/models/db_models"
)

func newUnitCmd(open func() (*deps, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unit",
		Short: "Manage units",
	}

	var plan string
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := db_models.ParsePlan(plan)
			if err != nil {
				return err
			}
			d, err := open()
			if err != nil {
				return err
			}
			defer d.close()

			created, err := d.units.CreateUnit(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "unit %q already exists\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created unit %q on the %s plan\n", args[0], p)
			return nil
		},
	}
	create.Flags().StringVar(&plan, "plan", string(db_models.PlanFree), "free or premium")

	list := &cobra.Command{
		Use:   "list",
		Short: "List units and their plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := open()
			if err != nil {
				return err
			}
			defer d.close()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPLAN")
			for _, u := range d.units.ListUnits(cmd.Context()) {
				fmt.Fprintf(w, "%s\t%s\n", u.Name, u.Plan)
			}
			return w.Flush()
		},
	}

	planCmd := &cobra.Command{
		Use:   "plan NAME PLAN",
		Short: "Change a unit's plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := db_models.ParsePlan(args[1])
			if err != nil {
				return err
			}
			d, err := open()
			if err != nil {
				return err
			}
			defer d.close()

			if err := d.units.ChangePlan(cmd.Context(), args[0], p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "unit %q is now on the %s plan\n", args[0], p)
			return nil
		},
	}

	cmd.AddCommand(create, list, planCmd)
	return cmd
}
