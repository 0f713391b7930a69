// Package yearly handles the command that shows the yearly analysis
package yearly

import (
	"fmt"

	"fjacquet/budget-tracker/cmd/common"
	"fjacquet/budget-tracker/cmd/root"

	"github.com/spf13/cobra"
)

var (
	year     int
	doExport bool
	outDir   string
)

// Cmd represents the yearly command
var Cmd = &cobra.Command{
	Use:   "yearly",
	Short: "Show monthly totals and extremes for a year",
	Long: `Show the total, transaction count and share of each month of a year,
the yearly total and average, and the highest and lowest spending months.`,
	Example: `  budget-tracker yearly -y 2024
  budget-tracker yearly -y 2024 --export --out-dir reports`,
	Args: cobra.NoArgs,
	RunE: yearlyFunc,
}

func init() {
	Cmd.Flags().IntVarP(&year, "year", "y", 0, "Year to analyze (default: current year)")
	Cmd.Flags().BoolVar(&doExport, "export", false, "Also write the monthly totals to a CSV file")
	Cmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "Directory for the exported CSV file")
}

func yearlyFunc(cmd *cobra.Command, args []string) error {
	t, err := root.GetTracker()
	if err != nil {
		return err
	}

	y := year
	if y == 0 {
		y = t.Now().Year()
	}

	ctx := common.Context(cmd)
	summary, err := t.YearView(ctx, y)
	if err != nil {
		return err
	}
	common.Renderer(cmd).Year(summary)

	if !doExport {
		return nil
	}
	result, err := t.ExportYearlySummary(ctx, outDir, y)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported yearly summary to %s\n", result.Path)
	return nil
}
