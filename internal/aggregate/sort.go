package aggregate

import (
	"sort"
	"strings"

	"fjacquet/budget-tracker/internal/dateutils"
	"fjacquet/budget-tracker/internal/models"
)

// Sort returns a copy of records ordered by key. The sort is stable: records
// with equal keys keep their input order in both directions. Undated records
// sort as the earliest date and malformed amounts as zero. An unknown key
// returns the records in input order.
func Sort(records []models.Expense, key models.SortKey, direction models.SortDirection) []models.Expense {
	sorted := make([]models.Expense, len(records))
	copy(sorted, records)

	compare := comparator(key)
	if compare == nil {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		c := compare(sorted[i], sorted[j])
		if direction == models.Descending {
			return c > 0
		}
		return c < 0
	})
	return sorted
}

func comparator(key models.SortKey) func(a, b models.Expense) int {
	switch key {
	case models.SortByDate:
		return func(a, b models.Expense) int {
			return sortableDate(a).Compare(sortableDate(b))
		}
	case models.SortByAmount:
		return func(a, b models.Expense) int {
			return a.Amount.DecimalOrZero().Cmp(b.Amount.DecimalOrZero())
		}
	case models.SortByCategory:
		return func(a, b models.Expense) int {
			return strings.Compare(a.Category, b.Category)
		}
	default:
		return nil
	}
}

func sortableDate(e models.Expense) dateutils.Date {
	d, _ := e.CalendarDate()
	return d
}
