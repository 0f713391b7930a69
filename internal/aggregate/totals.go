package aggregate

import (
	"sort"

	"fjacquet/budget-tracker/internal/dateutils"
	"fjacquet/budget-tracker/internal/models"
	"fjacquet/budget-tracker/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Total sums the amounts of the records. Malformed amounts count as zero.
func Total(records []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range records {
		total = total.Add(e.Amount.DecimalOrZero())
	}
	return total
}

// CategoryTotals returns one total per distinct category id, in order of first
// appearance. No ordering by value is applied; see TopCategories.
func CategoryTotals(records []models.Expense) []models.CategoryTotal {
	groups := GroupByCategory(records)
	totals := make([]models.CategoryTotal, 0, groups.Len())
	for _, key := range groups.Keys {
		items := groups.Get(key)
		totals = append(totals, models.CategoryTotal{
			Category: key,
			Total:    Total(items),
			Count:    len(items),
		})
	}
	return totals
}

// TopCategories returns the n largest category totals, highest first.
// Equal totals keep their input order. n <= 0 returns all of them.
func TopCategories(totals []models.CategoryTotal, n int) []models.CategoryTotal {
	sorted := make([]models.CategoryTotal, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total.GreaterThan(sorted[j].Total)
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Malformed reports every record field that the engine had to degrade.
func Malformed(records []models.Expense) []*parsererror.ParseError {
	var problems []*parsererror.ParseError
	for _, e := range records {
		if _, err := e.Amount.Decimal(); err != nil {
			problems = append(problems, &parsererror.ParseError{
				RecordID: e.ID,
				Field:    parsererror.FieldAmount,
				Value:    e.Amount.String(),
				Err:      err,
			})
		}
		if _, err := dateutils.ParseDate(e.Date); err != nil {
			problems = append(problems, &parsererror.ParseError{
				RecordID: e.ID,
				Field:    parsererror.FieldDate,
				Value:    e.Date,
				Err:      err,
			})
		}
	}
	return problems
}
