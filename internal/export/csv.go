// Package export renders expenses and yearly summaries as CSV.
package export

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/budget-tracker/internal/dateutils"
	"fjacquet/budget-tracker/internal/models"

	"github.com/gocarina/gocsv"
)

// ErrNothingToExport is returned when there are no records to write.
var ErrNothingToExport = errors.New("no expenses to export")

// descriptionColumn is always quoted in data rows.
const descriptionColumn = 2

type expenseRow struct {
	Date        string `csv:"Date"`
	Category    string `csv:"Category"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount (₹)"`
}

// Exporter writes CSV with a configurable delimiter.
type Exporter struct {
	Delimiter rune
}

// NewExporter returns an Exporter, defaulting to a comma delimiter.
func NewExporter(delimiter rune) *Exporter {
	if delimiter == 0 {
		delimiter = ','
	}
	return &Exporter{Delimiter: delimiter}
}

// WriteExpenses writes one row per record in the given order. Dates are
// rendered as "Mar 05, 2024" and amounts as stored.
func (e *Exporter) WriteExpenses(w io.Writer, records []models.Expense) error {
	if len(records) == 0 {
		return ErrNothingToExport
	}

	rows := make([]expenseRow, 0, len(records))
	for _, r := range records {
		date := dateutils.FormatDisplay(r.Date)
		if date == "" {
			date = r.Date
		}
		amount := r.Amount.String()
		if d, err := r.Amount.Decimal(); err == nil {
			amount = d.String()
		}
		rows = append(rows, expenseRow{
			Date:        date,
			Category:    r.Category,
			Description: r.Description,
			Amount:      amount,
		})
	}

	out := newRecordWriter(w, e.Delimiter, descriptionColumn)
	if err := gocsv.MarshalCSV(rows, out); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteYearlySummary writes the twelve monthly buckets of a year.
func (e *Exporter) WriteYearlySummary(w io.Writer, buckets []models.MonthlyBucket) error {
	if len(buckets) == 0 {
		return ErrNothingToExport
	}
	out := newRecordWriter(w, e.Delimiter)
	if err := gocsv.MarshalCSV(buckets, out); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
