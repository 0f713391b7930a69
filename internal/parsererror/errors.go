// Package parsererror defines the typed errors reported for malformed records and invalid input.
package parsererror

import "fmt"

// Record fields that can fail to parse.
const (
	FieldAmount = "amount"
	FieldDate   = "date"
)

// ParseError reports a stored record field that could not be parsed.
type ParseError struct {
	RecordID string
	Field    string
	Value    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record %s: failed to parse %s='%s': %v",
		e.RecordID, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports user input rejected before it reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
