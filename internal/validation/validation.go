// Package validation rejects malformed user input before it reaches the store.
// The aggregation engine assumes these checks have already been applied.
package validation

import (
	"strings"
	"unicode/utf8"

	"fjacquet/budget-tracker/internal/currencyutils"
	"fjacquet/budget-tracker/internal/dateutils"
	"fjacquet/budget-tracker/internal/parsererror"

	"github.com/shopspring/decimal"
)

// MaxDescriptionLength is the longest accepted description, in characters.
const MaxDescriptionLength = 200

// Description checks that a description is present and not too long.
func Description(description string) error {
	if strings.TrimSpace(description) == "" {
		return &parsererror.ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return &parsererror.ValidationError{Field: "description", Reason: "too long (max 200 characters)"}
	}
	return nil
}

// Amount parses an expense amount, which must be greater than zero.
func Amount(input string) (decimal.Decimal, error) {
	amount, err := currencyutils.ParseAmount(input)
	if err != nil {
		return decimal.Zero, &parsererror.ValidationError{Field: "amount", Reason: "not a number: '" + input + "'"}
	}
	if !amount.IsPositive() {
		return decimal.Zero, &parsererror.ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	return amount, nil
}

// Budget parses a monthly budget, which must be greater than zero.
func Budget(input string) (decimal.Decimal, error) {
	amount, err := currencyutils.ParseAmount(input)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, &parsererror.ValidationError{Field: "budget", Reason: "please enter a valid budget amount"}
	}
	return amount, nil
}

// Date checks that input is a calendar date and returns it as YYYY-MM-DD.
func Date(input string) (string, error) {
	d, err := dateutils.ParseDate(input)
	if err != nil {
		return "", &parsererror.ValidationError{Field: "date", Reason: "expected YYYY-MM-DD, got '" + input + "'"}
	}
	return d.String(), nil
}

// Category checks that a category id is present.
func Category(id string) error {
	if strings.TrimSpace(id) == "" {
		return &parsererror.ValidationError{Field: "category", Reason: "must not be empty"}
	}
	return nil
}

// Month checks a 1-based month number.
func Month(month int) error {
	if month < 1 || month > 12 {
		return &parsererror.ValidationError{Field: "month", Reason: "must be between 1 and 12"}
	}
	return nil
}
