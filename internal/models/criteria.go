package models

import "strings"

// FilterCriteria holds the optional, ANDed predicates of a filter query.
// Empty fields mean "no restriction".
type FilterCriteria struct {
	Categories []string `json:"categories,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	SearchTerm string   `json:"searchTerm,omitempty"`
}

// ActiveCount returns how many criteria are set.
func (c FilterCriteria) ActiveCount() int {
	count := 0
	if len(c.Categories) > 0 {
		count++
	}
	if c.StartDate != "" {
		count++
	}
	if c.EndDate != "" {
		count++
	}
	if strings.TrimSpace(c.SearchTerm) != "" {
		count++
	}
	return count
}

// IsEmpty reports whether no criterion is set.
func (c FilterCriteria) IsEmpty() bool {
	return c.ActiveCount() == 0
}
