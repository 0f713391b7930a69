package aggregate

import "github.com/shopspring/decimal"

// BudgetLevel classifies how much of the budget has been used.
type BudgetLevel string

const (
	LevelSuccess BudgetLevel = "success"
	LevelWarning BudgetLevel = "warning"
	LevelDanger  BudgetLevel = "danger"
)

var (
	warningThreshold = decimal.NewFromInt(70)
	dangerThreshold  = decimal.NewFromInt(90)
)

// Budget is the state of a monthly budget against the spending of a period.
type Budget struct {
	Limit       decimal.Decimal
	Spent       decimal.Decimal
	Remaining   decimal.Decimal
	PercentUsed decimal.Decimal
	Level       BudgetLevel
}

// OverBudget reports whether spending exceeds the limit.
func (b Budget) OverBudget() bool {
	return b.Remaining.IsNegative()
}

// BudgetStatus compares spent against limit. A non-positive limit yields 0% used.
func BudgetStatus(limit, spent decimal.Decimal) Budget {
	percent := Share(spent, limit)

	level := LevelSuccess
	switch {
	case percent.GreaterThanOrEqual(dangerThreshold):
		level = LevelDanger
	case percent.GreaterThanOrEqual(warningThreshold):
		level = LevelWarning
	}

	return Budget{
		Limit:       limit,
		Spent:       spent,
		Remaining:   limit.Sub(spent),
		PercentUsed: percent,
		Level:       level,
	}
}
