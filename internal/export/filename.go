package export

import (
	"fmt"
	"time"

	"fjacquet/budget-tracker/internal/dateutils"
)

// Options describes what an expense export covers. Month is 1-based and
// zero when unset.
type Options struct {
	StartDate string
	EndDate   string
	Month     int
	Year      int
}

// ExpensesFilename names an expense export, preferring the date range, then
// month and year, then year alone, then today's date.
func ExpensesFilename(opts Options, now time.Time) string {
	switch {
	case opts.StartDate != "" && opts.EndDate != "":
		return fmt.Sprintf("expenses_%s_to_%s.csv", opts.StartDate, opts.EndDate)
	case opts.Month > 0 && opts.Year > 0:
		return fmt.Sprintf("expenses_%d_%02d.csv", opts.Year, opts.Month)
	case opts.Year > 0:
		return fmt.Sprintf("expenses_%d.csv", opts.Year)
	default:
		return fmt.Sprintf("expenses_%s.csv", dateutils.ToISODate(now.UTC()))
	}
}

// YearlySummaryFilename names a yearly summary export.
func YearlySummaryFilename(year int) string {
	return fmt.Sprintf("yearly_summary_%d.csv", year)
}
