// Package list handles the command that shows a month's expenses
package list

import (
	"fmt"

	"fjacquet/budget-tracker/cmd/common"
	"fjacquet/budget-tracker/cmd/root"
	"fjacquet/budget-tracker/internal/tracker"

	"github.com/spf13/cobra"
)

var (
	period   common.PeriodFlags
	criteria common.CriteriaFlags
	sorting  common.SortFlags
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the expenses of a month",
	Long: `List the expenses of a month, optionally filtered by category, date range
and description text, and sorted by date, amount or category.`,
	Example: `  budget-tracker list
  budget-tracker list -m 2 -y 2024 --sort amount --order asc
  budget-tracker list -c food -c transport --search lunch`,
	Args: cobra.NoArgs,
	RunE: listFunc,
}

func init() {
	period.Register(Cmd)
	criteria.Register(Cmd)
	sorting.Register(Cmd)
}

func listFunc(cmd *cobra.Command, args []string) error {
	t, err := root.GetTracker()
	if err != nil {
		return err
	}

	month, year, err := period.Resolve(t.Now())
	if err != nil {
		return err
	}
	c, err := criteria.Criteria()
	if err != nil {
		return err
	}
	key, direction, err := sorting.Parse()
	if err != nil {
		return err
	}

	view, err := t.MonthView(common.Context(cmd), tracker.MonthQuery{
		Month: month, Year: year, Criteria: c, SortKey: key, Direction: direction,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Expenses for %s\n", common.PeriodLabel(view.Month, view.Year))
	if active := common.DescribeCriteria(view.Criteria); active != "" {
		fmt.Fprintf(out, "%s\n", active)
	}
	common.Renderer(cmd).Expenses(view.Records, view.Categories)
	return nil
}
