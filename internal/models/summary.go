package models

import "github.com/shopspring/decimal"

// SentinelMonthName is the name of the placeholder bucket used when a year has no spending.
const SentinelMonthName = "-"

// MonthlyBucket is the aggregate of one calendar month of a year.
type MonthlyBucket struct {
	Name  string          `json:"name" csv:"Month"`
	Month int             `json:"month" csv:"-"`
	Total decimal.Decimal `json:"total" csv:"Total Expenses (₹)"`
	Count int             `json:"count" csv:"Number of Transactions"`
}

// IsSentinel reports whether the bucket is the "no data" placeholder.
func (b MonthlyBucket) IsSentinel() bool {
	return b.Name == SentinelMonthName
}

// SentinelBucket returns the zero placeholder bucket.
func SentinelBucket() MonthlyBucket {
	return MonthlyBucket{Name: SentinelMonthName, Month: -1, Total: decimal.Zero}
}

// CategoryTotal is the aggregate of one category id within a collection.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// Extremes holds the highest and lowest non-zero months of a year.
type Extremes struct {
	Highest MonthlyBucket `json:"highest"`
	Lowest  MonthlyBucket `json:"lowest"`
}

// DailyTotal is the spending of one calendar day.
type DailyTotal struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}
