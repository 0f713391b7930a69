// Package add handles the command that records a new expense
package add

import (
	"fmt"

	"fjacquet/budget-tracker/cmd/common"
	"fjacquet/budget-tracker/cmd/root"
	"fjacquet/budget-tracker/internal/tracker"

	"github.com/spf13/cobra"
)

var input tracker.NewExpense

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	Long: `Record a new expense with an amount, a category and a description.
The date defaults to today.`,
	Example: `  budget-tracker add -a 250 -c food -d "Lunch with team"
  budget-tracker add -a 1200.50 -c bills -d "Electricity" --date 2024-03-05`,
	Args: cobra.NoArgs,
	RunE: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&input.Amount, "amount", "a", "", "Amount spent, greater than zero")
	Cmd.Flags().StringVarP(&input.Category, "category", "c", "", "Category id")
	Cmd.Flags().StringVarP(&input.Description, "description", "d", "", "What the money was spent on")
	Cmd.Flags().StringVar(&input.Date, "date", "", "Date of the expense (YYYY-MM-DD, default: today)")
	_ = Cmd.MarkFlagRequired("amount")
	_ = Cmd.MarkFlagRequired("category")
	_ = Cmd.MarkFlagRequired("description")
}

func addFunc(cmd *cobra.Command, args []string) error {
	t, err := root.GetTracker()
	if err != nil {
		return err
	}

	expense, err := t.AddExpense(common.Context(cmd), input)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s for %s on %s (id %s)\n",
		common.Money(expense.Amount.DecimalOrZero()), expense.Category, expense.Date, expense.ID)
	return nil
}
