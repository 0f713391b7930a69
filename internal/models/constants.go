package models

import "fmt"

// SortKey selects the field an expense list is ordered by.
type SortKey string

// SortDirection selects ascending or descending order.
type SortDirection string

const (
	SortByDate     SortKey = "date"
	SortByAmount   SortKey = "amount"
	SortByCategory SortKey = "category"

	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ParseSortKey validates a sort key.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortByDate, SortByAmount, SortByCategory:
		return k, nil
	default:
		return "", fmt.Errorf("unsupported sort key: %s (must be 'date', 'amount' or 'category')", s)
	}
}

// ParseSortDirection validates a sort direction.
func ParseSortDirection(s string) (SortDirection, error) {
	switch d := SortDirection(s); d {
	case Ascending, Descending:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported sort direction: %s (must be 'asc' or 'desc')", s)
	}
}
