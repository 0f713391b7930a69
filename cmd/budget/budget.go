// Package budget handles the commands that show and change the monthly budget
package budget

import (
	"fmt"

	"fjacquet/budget-tracker/cmd/common"
	"fjacquet/budget-tracker/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the budget command
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Show the monthly budget",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := root.GetTracker()
		if err != nil {
			return err
		}
		budget, err := t.Budget(common.Context(cmd))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Monthly budget: %s\n", common.Money(budget))
		return nil
	},
}

// SetCmd changes the monthly budget
var SetCmd = &cobra.Command{
	Use:     "set <amount>",
	Short:   "Change the monthly budget",
	Example: `  budget-tracker budget set 7500`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := root.GetTracker()
		if err != nil {
			return err
		}
		budget, err := t.SetBudget(common.Context(cmd), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Monthly budget set to %s\n", common.Money(budget))
		return nil
	},
}

func init() {
	Cmd.AddCommand(SetCmd)
}
