// Package report renders tracker views as terminal tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/budget-tracker/internal/aggregate"
	"fjacquet/budget-tracker/internal/currencyutils"
	"fjacquet/budget-tracker/internal/dateutils"
	"fjacquet/budget-tracker/internal/models"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
)

// Markers used in the yearly table.
const (
	MarkerHighest = "▲ highest"
	MarkerLowest  = "▼ lowest"
)

// Renderer writes tables to out, formatting money with symbol.
type Renderer struct {
	out    io.Writer
	symbol string
	color  bool
}

// NewRenderer returns a Renderer. Colors are only emitted when color is true.
func NewRenderer(out io.Writer, symbol string, color bool) *Renderer {
	if symbol == "" {
		symbol = currencyutils.DefaultSymbol
	}
	return &Renderer{out: out, symbol: symbol, color: color}
}

func (r *Renderer) money(d decimal.Decimal) string {
	return currencyutils.FormatINR(d, r.symbol)
}

func (r *Renderer) paint(c text.Color, s string) string {
	if !r.color {
		return s
	}
	return c.Sprint(s)
}

func (r *Renderer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}

// Expenses renders an expense list in the given order.
func (r *Renderer) Expenses(records []models.Expense, categories models.CategoryIndex) {
	if len(records) == 0 {
		fmt.Fprintln(r.out, "No expenses found.")
		return
	}

	t := r.newTable()
	t.AppendHeader(table.Row{"Date", "Category", "Description", "Amount", "ID"})
	total := decimal.Zero
	for _, e := range records {
		date := dateutils.FormatDisplay(e.Date)
		if date == "" {
			date = r.paint(text.FgHiBlack, e.Date)
		}
		amount := e.Amount.String()
		if d, err := e.Amount.Decimal(); err == nil {
			amount = r.money(d)
			total = total.Add(d)
		} else {
			amount = r.paint(text.FgRed, amount)
		}
		t.AppendRow(table.Row{date, categories.Name(e.Category), e.Description, amount, e.ID})
	}
	t.AppendSeparator()
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d expenses", len(records)), r.money(total), ""})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight}})
	t.Render()
}

// Budget renders the budget, total and remaining cards of a period.
func (r *Renderer) Budget(period string, b aggregate.Budget) {
	levelColor := text.FgGreen
	switch b.Level {
	case aggregate.LevelWarning:
		levelColor = text.FgYellow
	case aggregate.LevelDanger:
		levelColor = text.FgRed
	}

	remaining := r.money(b.Remaining)
	if b.OverBudget() {
		remaining += " (over budget)"
	}

	t := r.newTable()
	t.SetTitle("Budget %s", period)
	t.AppendRow(table.Row{"Monthly Budget", r.money(b.Limit)})
	t.AppendRow(table.Row{"Total Expenses", r.money(b.Spent)})
	t.AppendRow(table.Row{"Remaining", r.paint(levelColor, remaining)})
	t.AppendRow(table.Row{"Used", r.paint(levelColor, currencyutils.FormatPercent(b.PercentUsed)+" "+progressBar(b.PercentUsed, 20))})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()
}

// CategoryBreakdown renders each category's total and share of total.
func (r *Renderer) CategoryBreakdown(title string, totals []models.CategoryTotal, categories models.CategoryIndex) {
	if len(totals) == 0 {
		fmt.Fprintln(r.out, "No data to visualize.")
		return
	}

	sum := decimal.Zero
	for _, ct := range totals {
		sum = sum.Add(ct.Total)
	}

	t := r.newTable()
	t.SetTitle("%s", title)
	t.AppendHeader(table.Row{"Category", "Expenses", "Amount", "Share"})
	for _, ct := range totals {
		t.AppendRow(table.Row{
			categories.Name(ct.Category),
			ct.Count,
			r.money(ct.Total),
			currencyutils.FormatPercent(aggregate.Share(ct.Total, sum)),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.Render()
}

// Trend renders daily totals, one row per day.
func (r *Renderer) Trend(days []models.DailyTotal) {
	peak := decimal.Zero
	for _, d := range days {
		if d.Total.GreaterThan(peak) {
			peak = d.Total
		}
	}

	t := r.newTable()
	t.SetTitle("%d-Day Spending Trend", len(days))
	for _, d := range days {
		label := d.Date
		if parsed, err := dateutils.ParseDate(d.Date); err == nil {
			label = parsed.Time().Format("Jan 2")
		}
		t.AppendRow(table.Row{label, r.money(d.Total), progressBar(aggregate.Share(d.Total, peak), 20)})
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()
}

// Year renders the twelve months of a yearly analysis with their share of the
// year and the highest/lowest markers. Markers compare totals, so a month can
// carry both.
func (r *Renderer) Year(s aggregate.YearSummary) {
	t := r.newTable()
	t.SetTitle("Yearly Analysis %d", s.Year)
	t.AppendHeader(table.Row{"Month", "Total", "Transactions", "% of Year", ""})

	for i, m := range s.Months {
		var markers []string
		if m.Total.IsPositive() && m.Total.Equal(s.Extremes.Highest.Total) {
			markers = append(markers, r.paint(text.FgRed, MarkerHighest))
		}
		if m.Total.IsPositive() && m.Total.Equal(s.Extremes.Lowest.Total) {
			markers = append(markers, r.paint(text.FgGreen, MarkerLowest))
		}
		share := decimal.Zero
		if i < len(s.Shares) {
			share = s.Shares[i]
		}
		t.AppendRow(table.Row{
			dateutils.MonthName(m.Month),
			r.money(m.Total),
			m.Count,
			currencyutils.FormatPercent(share),
			strings.Join(markers, " "),
		})
	}
	t.AppendSeparator()
	t.AppendFooter(table.Row{"Total", r.money(s.Total), s.Count, "", ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.Render()

	fmt.Fprintf(r.out, "Average monthly: %s\n", r.money(s.Average))
	fmt.Fprintf(r.out, "Highest month:   %s\n", r.extreme(s.Extremes.Highest))
	fmt.Fprintf(r.out, "Lowest month:    %s\n", r.extreme(s.Extremes.Lowest))
}

func (r *Renderer) extreme(b models.MonthlyBucket) string {
	if b.IsSentinel() {
		return models.SentinelMonthName
	}
	return fmt.Sprintf("%s (%s)", b.Name, r.money(b.Total))
}

// Categories renders the category catalog.
func (r *Renderer) Categories(categories []models.Category) {
	t := r.newTable()
	t.AppendHeader(table.Row{"ID", "Name", "Color"})
	for _, c := range categories {
		t.AppendRow(table.Row{c.ID, c.Name, c.Color})
	}
	t.Render()
}

// Years lists years, one per line.
func (r *Renderer) Years(years []int) {
	if len(years) == 0 {
		fmt.Fprintln(r.out, "No expenses recorded yet.")
		return
	}
	for _, y := range years {
		fmt.Fprintln(r.out, y)
	}
}

// progressBar draws percent (0-100, clamped) as a bar of width cells.
func progressBar(percent decimal.Decimal, width int) string {
	filled := int(percent.Mul(decimal.NewFromInt(int64(width))).Div(decimal.NewFromInt(100)).Round(0).IntPart())
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
