// Package aggregate turns a flat collection of expense records into the derived
// views the application displays: period selection, filtering, grouping,
// totals, sorting and monthly summaries.
//
// Every function is pure. Inputs are never modified and every result is a
// freshly allocated collection, so callers may query concurrently without
// locking. Records whose date or amount cannot be parsed degrade locally
// (excluded from date matches, counted as zero) instead of failing the query.
package aggregate

import (
	"sort"

	"fjacquet/budget-tracker/internal/models"
)

// Groups is an insertion-ordered partition of records by key.
type Groups struct {
	// Keys lists the group keys in order of first appearance.
	Keys  []string
	Items map[string][]models.Expense
}

// Get returns the records of a group, or nil when the key is absent.
func (g Groups) Get(key string) []models.Expense {
	return g.Items[key]
}

// Len returns the number of groups.
func (g Groups) Len() int {
	return len(g.Keys)
}

func (g *Groups) add(key string, e models.Expense) {
	if _, exists := g.Items[key]; !exists {
		g.Keys = append(g.Keys, key)
	}
	g.Items[key] = append(g.Items[key], e)
}

func newGroups() Groups {
	return Groups{Keys: []string{}, Items: make(map[string][]models.Expense)}
}

// SelectByMonth returns the records dated in the given 0-based month of year.
// Matching uses the calendar components of the stored date, never an instant.
func SelectByMonth(records []models.Expense, monthIndex, year int) []models.Expense {
	out := make([]models.Expense, 0)
	for _, e := range records {
		d, ok := e.CalendarDate()
		if ok && d.Year == year && d.MonthIndex() == monthIndex {
			out = append(out, e)
		}
	}
	return out
}

// SelectByYear returns the records dated in year.
func SelectByYear(records []models.Expense, year int) []models.Expense {
	out := make([]models.Expense, 0)
	for _, e := range records {
		d, ok := e.CalendarDate()
		if ok && d.Year == year {
			out = append(out, e)
		}
	}
	return out
}

// AvailableYears returns the distinct years present in the records, most recent first.
func AvailableYears(records []models.Expense) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, e := range records {
		d, ok := e.CalendarDate()
		if !ok {
			continue
		}
		if _, dup := seen[d.Year]; dup {
			continue
		}
		seen[d.Year] = struct{}{}
		years = append(years, d.Year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// GroupByCategory partitions records by their raw category id.
func GroupByCategory(records []models.Expense) Groups {
	groups := newGroups()
	for _, e := range records {
		groups.add(e.Category, e)
	}
	return groups
}

// GroupByMonth partitions records by YYYY-MM. Undated records are skipped.
func GroupByMonth(records []models.Expense) Groups {
	groups := newGroups()
	for _, e := range records {
		d, ok := e.CalendarDate()
		if !ok {
			continue
		}
		groups.add(d.MonthKey(), e)
	}
	return groups
}
