// Package models defines the data structures shared by the engine, the store and the CLI.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"fjacquet/budget-tracker/internal/dateutils"
)

// Expense is one logged expense. Records are never modified once created.
type Expense struct {
	ID          string `json:"id"`
	Amount      Amount `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// CalendarDate returns the calendar components of the record's date.
func (e Expense) CalendarDate() (dateutils.Date, bool) {
	d, err := dateutils.ParseDate(e.Date)
	if err != nil {
		return dateutils.Date{}, false
	}
	return d, true
}

// UnmarshalJSON decodes a stored record field by field. Text fields written
// as numbers, booleans or nested values keep their raw JSON text, so a bad
// field degrades only that field. Only a value that is not an object fails.
func (e *Expense) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("expense is not a JSON object: %w", err)
	}

	decoded := Expense{
		ID:          lenientText(fields["id"]),
		Category:    lenientText(fields["category"]),
		Description: lenientText(fields["description"]),
		Date:        lenientText(fields["date"]),
		CreatedAt:   lenientText(fields["createdAt"]),
	}
	if raw, ok := fields["amount"]; ok {
		if err := decoded.Amount.UnmarshalJSON(raw); err != nil {
			decoded.Amount = NewAmountFromString(string(raw))
		}
	}

	*e = decoded
	return nil
}

// lenientText returns a JSON string's value, "" for a missing or null value,
// and the raw text of anything else.
func lenientText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}
