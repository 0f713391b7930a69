package aggregate

import (
	"strings"

	"fjacquet/budget-tracker/internal/dateutils"
	"fjacquet/budget-tracker/internal/models"
)

// Filter applies the criteria in order: category set, start date, end date,
// then a case-insensitive description search. Absent criteria do not restrict.
// A bound that cannot be parsed is treated as absent; a record whose date
// cannot be parsed fails any present bound.
func Filter(records []models.Expense, criteria models.FilterCriteria) []models.Expense {
	filtered := make([]models.Expense, len(records))
	copy(filtered, records)

	if len(criteria.Categories) > 0 {
		allowed := make(map[string]struct{}, len(criteria.Categories))
		for _, c := range criteria.Categories {
			allowed[c] = struct{}{}
		}
		filtered = keep(filtered, func(e models.Expense) bool {
			_, ok := allowed[e.Category]
			return ok
		})
	}

	if start, err := dateutils.ParseDate(criteria.StartDate); err == nil {
		filtered = keep(filtered, func(e models.Expense) bool {
			d, ok := e.CalendarDate()
			return ok && d.Compare(start) >= 0
		})
	}

	if end, err := dateutils.ParseDate(criteria.EndDate); err == nil {
		filtered = keep(filtered, func(e models.Expense) bool {
			d, ok := e.CalendarDate()
			return ok && d.Compare(end) <= 0
		})
	}

	if term := strings.TrimSpace(criteria.SearchTerm); term != "" {
		needle := strings.ToLower(criteria.SearchTerm)
		filtered = keep(filtered, func(e models.Expense) bool {
			return strings.Contains(strings.ToLower(e.Description), needle)
		})
	}

	return filtered
}

func keep(records []models.Expense, pred func(models.Expense) bool) []models.Expense {
	out := make([]models.Expense, 0, len(records))
	for _, e := range records {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}
