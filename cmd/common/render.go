package common

import (
	"context"
	"fmt"

	"fjacquet/budget-tracker/cmd/root"
	"fjacquet/budget-tracker/internal/currencyutils"
	"fjacquet/budget-tracker/internal/dateutils"
	"fjacquet/budget-tracker/internal/models"
	"fjacquet/budget-tracker/internal/report"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Renderer returns a report renderer writing to the command's output.
func Renderer(cmd *cobra.Command) *report.Renderer {
	return report.NewRenderer(cmd.OutOrStdout(), root.CurrencySymbol(), root.ColorEnabled(cmd))
}

// PeriodLabel formats a 0-based month and year as "March 2024".
func PeriodLabel(month, year int) string {
	return fmt.Sprintf("%s %d", dateutils.MonthName(month), year)
}

// DescribeCriteria summarizes active filters, or returns "" when none are set.
func DescribeCriteria(c models.FilterCriteria) string {
	n := c.ActiveCount()
	switch n {
	case 0:
		return ""
	case 1:
		return "1 filter active"
	default:
		return fmt.Sprintf("%d filters active", n)
	}
}

// Money formats an amount with the configured currency symbol.
func Money(d decimal.Decimal) string {
	symbol := root.CurrencySymbol()
	if symbol == "" {
		symbol = currencyutils.DefaultSymbol
	}
	return currencyutils.FormatINR(d, symbol)
}

// Context returns the command context, or a background context when the
// command runs outside Execute.
func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
