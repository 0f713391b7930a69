// Package export handles the command that writes expenses to CSV files
package export

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/budget-tracker/cmd/common"
	"fjacquet/budget-tracker/cmd/root"
	csvexport "fjacquet/budget-tracker/internal/export"
	"fjacquet/budget-tracker/internal/tracker"
	"fjacquet/budget-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var (
	month      int
	year       int
	from       string
	to         string
	yearly     bool
	outDir     string
	categories []string
	search     string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export expenses or a yearly summary to CSV",
	Long: `Export expenses to a CSV file, newest first. A complete --from/--to range
takes precedence over --month/--year. Without any period every expense is
exported. With --yearly the twelve monthly totals of --year are exported.`,
	Example: `  budget-tracker export -m 3 -y 2024
  budget-tracker export --from 2024-01-01 --to 2024-03-31 -c food
  budget-tracker export --yearly -y 2024 -o reports`,
	Args: cobra.NoArgs,
	RunE: exportFunc,
}

func init() {
	Cmd.Flags().IntVarP(&month, "month", "m", 0, "Month 1-12 (uses --year, default: current year)")
	Cmd.Flags().IntVarP(&year, "year", "y", 0, "Year")
	Cmd.Flags().StringVar(&from, "from", "", "Start of the date range (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&to, "to", "", "End of the date range (YYYY-MM-DD)")
	Cmd.Flags().BoolVar(&yearly, "yearly", false, "Export the monthly totals of a year instead of expenses")
	Cmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "Directory for the CSV file")
	Cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Only export these category ids (repeatable)")
	Cmd.Flags().StringVarP(&search, "search", "s", "", "Only export expenses whose description contains this text")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	t, err := root.GetTracker()
	if err != nil {
		return err
	}
	ctx := common.Context(cmd)
	out := cmd.OutOrStdout()

	if yearly {
		y := year
		if y == 0 {
			y = t.Now().Year()
		}
		result, err := t.ExportYearlySummary(ctx, outDir, y)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported yearly summary to %s\n", result.Path)
		return nil
	}

	q, err := buildQuery(t)
	if err != nil {
		return err
	}

	result, err := t.ExportExpenses(ctx, outDir, q)
	if errors.Is(err, csvexport.ErrNothingToExport) {
		fmt.Fprintln(out, "No expenses to export.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Exported %d expenses to %s\n", result.Count, result.Path)
	return nil
}

// buildQuery validates the flags. A one-sided range narrows the selection
// without naming the file.
func buildQuery(t *tracker.Tracker) (tracker.ExportQuery, error) {
	criteria, err := common.CriteriaFlags{Categories: categories, Search: search}.Criteria()
	if err != nil {
		return tracker.ExportQuery{}, err
	}

	q := tracker.ExportQuery{Month: month, Year: year, Criteria: criteria}
	start, end := strings.TrimSpace(from), strings.TrimSpace(to)
	if start != "" {
		if start, err = validation.Date(start); err != nil {
			return tracker.ExportQuery{}, err
		}
	}
	if end != "" {
		if end, err = validation.Date(end); err != nil {
			return tracker.ExportQuery{}, err
		}
	}

	switch {
	case start != "" && end != "":
		q.StartDate, q.EndDate = start, end
	case start != "":
		q.Criteria.StartDate = start
	case end != "":
		q.Criteria.EndDate = end
	}

	if q.Month != 0 && q.Year == 0 {
		q.Year = t.Now().Year()
	}
	return q, nil
}
