package tracker

import (
	"context"

	"fjacquet/budget-tracker/internal/aggregate"
	"fjacquet/budget-tracker/internal/logging"
	"fjacquet/budget-tracker/internal/models"
	"fjacquet/budget-tracker/internal/validation"

	"github.com/shopspring/decimal"
)

const (
	// TopCategoryCount is how many categories the top-spending view shows.
	TopCategoryCount = 5
	// TrendDays is the length of the daily spending trend.
	TrendDays = 7
)

// MonthQuery selects and orders the records of a monthly view. Month is 0-based.
type MonthQuery struct {
	Month     int
	Year      int
	Criteria  models.FilterCriteria
	SortKey   models.SortKey
	Direction models.SortDirection
}

// MonthView is everything shown for one month: the filtered, sorted records
// and the figures derived from them.
type MonthView struct {
	Month          int
	Year           int
	Criteria       models.FilterCriteria
	Records        []models.Expense
	Total          decimal.Decimal
	Budget         aggregate.Budget
	CategoryTotals []models.CategoryTotal
	TopCategories  []models.CategoryTotal
	Trend          []models.DailyTotal
	Categories     models.CategoryIndex
}

// MonthView selects the month, applies the criteria and sorts the result.
// Totals, budget status and charts all use the filtered records.
func (t *Tracker) MonthView(ctx context.Context, q MonthQuery) (MonthView, error) {
	if err := validation.Month(q.Month + 1); err != nil {
		return MonthView{}, err
	}
	if q.SortKey == "" {
		q.SortKey = models.SortByDate
	}
	if q.Direction == "" {
		q.Direction = models.Descending
	}

	records, err := t.loadAndReport(ctx)
	if err != nil {
		return MonthView{}, err
	}
	budget, err := t.store.LoadBudget(ctx)
	if err != nil {
		return MonthView{}, err
	}
	categories, err := t.store.LoadCategories(ctx)
	if err != nil {
		return MonthView{}, err
	}

	filtered := aggregate.Filter(aggregate.SelectByMonth(records, q.Month, q.Year), q.Criteria)
	total := aggregate.Total(filtered)
	totals := aggregate.CategoryTotals(filtered)

	t.logger.Debug("Computed month view",
		logging.F(logging.FieldYear, q.Year),
		logging.F(logging.FieldMonth, q.Month+1),
		logging.F(logging.FieldCount, len(filtered)))

	return MonthView{
		Month:          q.Month,
		Year:           q.Year,
		Criteria:       q.Criteria,
		Records:        aggregate.Sort(filtered, q.SortKey, q.Direction),
		Total:          total,
		Budget:         aggregate.BudgetStatus(budget, total),
		CategoryTotals: totals,
		TopCategories:  aggregate.TopCategories(totals, TopCategoryCount),
		Trend:          aggregate.DailyTotals(filtered, t.now(), TrendDays),
		Categories:     models.NewCategoryIndex(categories),
	}, nil
}

// YearView computes the yearly analysis of year.
func (t *Tracker) YearView(ctx context.Context, year int) (aggregate.YearSummary, error) {
	records, err := t.loadAndReport(ctx)
	if err != nil {
		return aggregate.YearSummary{}, err
	}
	summary := aggregate.SummarizeYear(records, year)
	t.logger.Debug("Computed year view",
		logging.F(logging.FieldYear, year),
		logging.F(logging.FieldCount, summary.Count))
	return summary, nil
}
