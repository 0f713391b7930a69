package tracker

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"fjacquet/budget-tracker/internal/aggregate"
	"fjacquet/budget-tracker/internal/export"
	"fjacquet/budget-tracker/internal/fileutils"
	"fjacquet/budget-tracker/internal/logging"
	"fjacquet/budget-tracker/internal/models"
	"fjacquet/budget-tracker/internal/validation"
)

// ExportQuery selects the records of an expense export. A complete date range
// takes precedence over Month/Year. Month is 1-based and zero when unset.
type ExportQuery struct {
	StartDate string
	EndDate   string
	Month     int
	Year      int
	Criteria  models.FilterCriteria
}

// ExportResult describes a written export file.
type ExportResult struct {
	Path  string
	Count int
}

func (q ExportQuery) options() export.Options {
	return export.Options{StartDate: q.StartDate, EndDate: q.EndDate, Month: q.Month, Year: q.Year}
}

// selectForExport narrows records to the query's period and criteria.
func (q ExportQuery) selectForExport(records []models.Expense) []models.Expense {
	criteria := q.Criteria
	switch {
	case q.StartDate != "" && q.EndDate != "":
		criteria.StartDate = q.StartDate
		criteria.EndDate = q.EndDate
	case q.Month > 0 && q.Year > 0:
		records = aggregate.SelectByMonth(records, q.Month-1, q.Year)
	case q.Year > 0:
		records = aggregate.SelectByYear(records, q.Year)
	}
	return aggregate.Filter(records, criteria)
}

// ExportExpenses writes the selected records, newest first, to a CSV file in dir.
func (t *Tracker) ExportExpenses(ctx context.Context, dir string, q ExportQuery) (ExportResult, error) {
	if q.Month != 0 {
		if err := validation.Month(q.Month); err != nil {
			return ExportResult{}, err
		}
	}

	records, err := t.loadAndReport(ctx)
	if err != nil {
		return ExportResult{}, err
	}

	selected := aggregate.Sort(q.selectForExport(records), models.SortByDate, models.Descending)
	if len(selected) == 0 {
		return ExportResult{}, export.ErrNothingToExport
	}

	path := filepath.Join(dir, export.ExpensesFilename(q.options(), t.now()))
	if err := t.writeFile(path, func(f io.Writer) error {
		return t.exporter.WriteExpenses(f, selected)
	}); err != nil {
		return ExportResult{}, err
	}

	t.logger.Info("Exported expenses",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldCount, len(selected)))
	return ExportResult{Path: path, Count: len(selected)}, nil
}

// ExportYearlySummary writes the twelve monthly buckets of year to a CSV file in dir.
func (t *Tracker) ExportYearlySummary(ctx context.Context, dir string, year int) (ExportResult, error) {
	summary, err := t.YearView(ctx, year)
	if err != nil {
		return ExportResult{}, err
	}

	path := filepath.Join(dir, export.YearlySummaryFilename(year))
	if err := t.writeFile(path, func(f io.Writer) error {
		return t.exporter.WriteYearlySummary(f, summary.Months)
	}); err != nil {
		return ExportResult{}, err
	}

	t.logger.Info("Exported yearly summary",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldYear, year))
	return ExportResult{Path: path, Count: len(summary.Months)}, nil
}

func (t *Tracker) writeFile(path string, write func(io.Writer) error) error {
	f, err := fileutils.CreateFile(path)
	if err != nil {
		return fmt.Errorf("error creating export file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing export file: %w", err)
	}
	return nil
}
