package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"menuboard/internal/models/db_models"
	"menuboard/internal/models/request_models"
	"menuboard/internal/policy"
)

func newAccountCmd(open func() (*deps, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	var req request_models.CreateAccountRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an account; plan limits still apply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(req.Password) < 6 {
				return fmt.Errorf("password must be at least 6 characters")
			}
			d, err := open()
			if err != nil {
				return err
			}
			defer d.close()

			// operators act with admin rights
			operator := policy.Actor{Role: db_models.RoleAdmin}
			account, err := d.accounts.CreateAccount(cmd.Context(), operator, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s %q (%s)\n", account.Role, account.Username, account.ID)
			return nil
		},
	}

	flags := create.Flags()
	flags.StringVar(&req.Username, "username", "", "login name")
	flags.StringVar(&req.Password, "password", "", "initial password")
	flags.StringVar(&req.DisplayName, "name", "", "display name")
	flags.StringVar(&req.Role, "role", string(db_models.RoleUser), "user, unit-admin or admin")
	flags.StringVar(&req.Unit, "unit", "", "unit the account belongs to")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("password")
	_ = create.MarkFlagRequired("unit")

	cmd.AddCommand(create)
	return cmd
}
