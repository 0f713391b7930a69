package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is the stored textual representation of an expense amount.
//
// Stored collections may contain amounts written as JSON numbers or strings,
// and occasionally values that are not numbers at all. Amount keeps the raw
// text so that a single bad value never prevents the collection from loading;
// parsing happens when the value is used.
type Amount struct {
	raw string
}

// NewAmount creates an Amount from a decimal value.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{raw: d.String()}
}

// NewAmountFromString creates an Amount from raw text without validating it.
func NewAmountFromString(s string) Amount {
	return Amount{raw: strings.TrimSpace(s)}
}

// Decimal parses the amount. It fails for empty or non-numeric values.
func (a Amount) Decimal() (decimal.Decimal, error) {
	if a.raw == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(a.raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", a.raw, err)
	}
	return d, nil
}

// DecimalOrZero returns the parsed amount, or zero when it is malformed.
func (a Amount) DecimalOrZero() decimal.Decimal {
	d, err := a.Decimal()
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Valid reports whether the amount parses as a number.
func (a Amount) Valid() bool {
	_, err := a.Decimal()
	return err == nil
}

// String returns the amount as stored.
func (a Amount) String() string {
	return a.raw
}

// MarshalJSON writes valid amounts as JSON numbers and anything else as a string.
func (a Amount) MarshalJSON() ([]byte, error) {
	if d, err := a.Decimal(); err == nil {
		return []byte(d.String()), nil
	}
	return json.Marshal(a.raw)
}

// UnmarshalJSON accepts numbers, strings and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		a.raw = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		a.raw = strings.TrimSpace(s)
	default:
		a.raw = string(data)
	}
	return nil
}
