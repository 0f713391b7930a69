package aggregate

import (
	"time"

	"fjacquet/budget-tracker/internal/dateutils"
	"fjacquet/budget-tracker/internal/models"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// MonthlyTotals returns exactly twelve buckets for year, January first,
// including months without records.
func MonthlyTotals(records []models.Expense, year int) []models.MonthlyBucket {
	buckets := make([]models.MonthlyBucket, 12)
	for month := 0; month < 12; month++ {
		selected := SelectByMonth(records, month, year)
		buckets[month] = models.MonthlyBucket{
			Name:  dateutils.MonthAbbrev(month),
			Month: month,
			Total: Total(selected),
			Count: len(selected),
		}
	}
	return buckets
}

// YearlyExtremes finds the highest and lowest months among buckets with a
// positive total. Ties go to the earliest bucket. When no bucket qualifies
// both results are the sentinel bucket. A single populated month is both the
// highest and the lowest.
func YearlyExtremes(buckets []models.MonthlyBucket) models.Extremes {
	highest := models.SentinelBucket()
	lowest := models.SentinelBucket()
	found := false

	for _, b := range buckets {
		if !b.Total.IsPositive() {
			continue
		}
		if b.Total.GreaterThan(highest.Total) {
			highest = b
		}
		if !found || b.Total.LessThan(lowest.Total) {
			lowest = b
			found = true
		}
	}

	return models.Extremes{Highest: highest, Lowest: lowest}
}

// YearSummary is the yearly analysis of a record collection.
type YearSummary struct {
	Year     int
	Total    decimal.Decimal
	Count    int
	Average  decimal.Decimal // Total spread over twelve months
	Months   []models.MonthlyBucket
	Extremes models.Extremes
	// Shares holds each month's percentage of the year total, aligned with Months.
	Shares []decimal.Decimal
}

// SummarizeYear computes the yearly analysis for year.
func SummarizeYear(records []models.Expense, year int) YearSummary {
	yearRecords := SelectByYear(records, year)
	total := Total(yearRecords)
	months := MonthlyTotals(records, year)

	shares := make([]decimal.Decimal, len(months))
	for i, m := range months {
		shares[i] = Share(m.Total, total)
	}

	return YearSummary{
		Year:     year,
		Total:    total,
		Count:    len(yearRecords),
		Average:  total.Div(twelve),
		Months:   months,
		Extremes: YearlyExtremes(months),
		Shares:   shares,
	}
}

// Share returns part as a percentage of whole, or zero when whole is not positive.
func Share(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// DailyTotals returns the spending of each of the days calendar days ending at
// end, oldest first.
func DailyTotals(records []models.Expense, end time.Time, days int) []models.DailyTotal {
	if days <= 0 {
		return []models.DailyTotal{}
	}

	byDay := make(map[dateutils.Date]decimal.Decimal)
	for _, e := range records {
		d, ok := e.CalendarDate()
		if !ok {
			continue
		}
		byDay[d] = byDay[d].Add(e.Amount.DecimalOrZero())
	}

	last := dateutils.FromTime(end).Time()
	totals := make([]models.DailyTotal, days)
	for i := 0; i < days; i++ {
		day := dateutils.FromTime(last.AddDate(0, 0, i-(days-1)))
		total, ok := byDay[day]
		if !ok {
			total = decimal.Zero
		}
		totals[i] = models.DailyTotal{Date: day.String(), Total: total}
	}
	return totals
}
