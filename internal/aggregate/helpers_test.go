package aggregate

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"testing"

	"fjacquet/budget-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// cryptoRandIntn returns a random int in [0, n) using crypto/rand
func cryptoRandIntn(n int) int {
	if n <= 0 {
		return 0
	}
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(result.Int64())
}

var testCategories = []string{"food", "transport", "bills", "shopping", "unknown-cat"}

var testDescriptions = []string{"Coffee shop", "Bus ticket", "Electricity bill", "Groceries", "COFFEE beans", "Taxi"}

func expense(id, amount, category, description, date string) models.Expense {
	return models.Expense{
		ID:          id,
		Amount:      models.NewAmountFromString(amount),
		Category:    category,
		Description: description,
		Date:        date,
	}
}

// generateRecords builds a random collection spanning 2022-2024 with whole and
// fractional amounts. Roughly one record in twenty has a malformed amount or date.
func generateRecords(n int) []models.Expense {
	records := make([]models.Expense, 0, n)
	for i := 0; i < n; i++ {
		year := 2022 + cryptoRandIntn(3)
		month := cryptoRandIntn(12) + 1
		day := cryptoRandIntn(28) + 1
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		amount := fmt.Sprintf("%d.%02d", cryptoRandIntn(500), cryptoRandIntn(100))

		switch cryptoRandIntn(40) {
		case 0:
			amount = "not-a-number"
		case 1:
			date = "someday"
		}

		records = append(records, expense(
			fmt.Sprintf("id-%d", i),
			amount,
			testCategories[cryptoRandIntn(len(testCategories))],
			testDescriptions[cryptoRandIntn(len(testDescriptions))],
			date,
		))
	}
	return records
}

func generateCriteria() models.FilterCriteria {
	var c models.FilterCriteria
	if cryptoRandIntn(2) == 0 {
		c.Categories = []string{testCategories[cryptoRandIntn(len(testCategories))]}
	}
	if cryptoRandIntn(2) == 0 {
		c.StartDate = fmt.Sprintf("%04d-%02d-01", 2022+cryptoRandIntn(3), cryptoRandIntn(12)+1)
	}
	if cryptoRandIntn(2) == 0 {
		c.EndDate = fmt.Sprintf("%04d-%02d-28", 2022+cryptoRandIntn(3), cryptoRandIntn(12)+1)
	}
	if cryptoRandIntn(2) == 0 {
		c.SearchTerm = []string{"coffee", "BILL", "t", "zzz"}[cryptoRandIntn(4)]
	}
	return c
}

func ids(records []models.Expense) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual),
		append([]interface{}{fmt.Sprintf("expected %s, got %s", expected, actual.String())}, msgAndArgs...)...)
}
