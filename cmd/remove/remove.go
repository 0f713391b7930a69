// Package remove handles the command that deletes an expense
package remove

import (
	"fmt"

	"fjacquet/budget-tracker/cmd/common"
	"fjacquet/budget-tracker/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the remove command
var Cmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm", "delete"},
	Short:   "Delete an expense by id",
	Long:    `Delete an expense. Ids are shown in the last column of the list command.`,
	Args:    cobra.ExactArgs(1),
	RunE:    removeFunc,
}

func removeFunc(cmd *cobra.Command, args []string) error {
	t, err := root.GetTracker()
	if err != nil {
		return err
	}
	if err := t.DeleteExpense(common.Context(cmd), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted expense %s\n", args[0])
	return nil
}
