// Package summary handles the command that shows a month's budget dashboard
package summary

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
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show budget status and spending breakdown for a month",
	Long: `Show the monthly budget, total spent and remaining amount, the spending per
category, the top categories and the daily trend of the last days.
Filters narrow every figure.`,
	Args: cobra.NoArgs,
	RunE: summaryFunc,
}

func init() {
	period.Register(Cmd)
	criteria.Register(Cmd)
}

func summaryFunc(cmd *cobra.Command, args []string) error {
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

	view, err := t.MonthView(common.Context(cmd), tracker.MonthQuery{Month: month, Year: year, Criteria: c})
	if err != nil {
		return err
	}

	label := common.PeriodLabel(view.Month, view.Year)
	if active := common.DescribeCriteria(view.Criteria); active != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", active)
	}

	r := common.Renderer(cmd)
	r.Budget(label, view.Budget)
	r.CategoryBreakdown("Spending by Category", view.CategoryTotals, view.Categories)
	if len(view.TopCategories) > 0 {
		r.CategoryBreakdown(fmt.Sprintf("Top %d Categories", tracker.TopCategoryCount), view.TopCategories, view.Categories)
	}
	r.Trend(view.Trend)
	return nil
}
