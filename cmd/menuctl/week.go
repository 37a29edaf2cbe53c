package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"menuboard/pkg/utils"
)

func newWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week DATE",
		Short: "Print the menu week a yyyy-mm-dd date falls in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			monday, err := utils.ParseWeekKey(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", utils.WeekKey(monday), utils.WeekSpanLabel(monday))
			return nil
		},
	}
}
