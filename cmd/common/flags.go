// Package common contains shared flag handling for command handlers
package common

import (
	"strings"
	"time"

	"fjacquet/budget-tracker/internal/models"
	"fjacquet/budget-tracker/internal/validation"

	"github.com/spf13/cobra"
)

// PeriodFlags selects a month and year. Zero values mean "current".
type PeriodFlags struct {
	Month int
	Year  int
}

// Register adds --month and --year to cmd.
func (p *PeriodFlags) Register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&p.Month, "month", "m", 0, "Month 1-12 (default: current month)")
	cmd.Flags().IntVarP(&p.Year, "year", "y", 0, "Year (default: current year)")
}

// Resolve returns the 0-based month and the year, defaulting to now.
func (p PeriodFlags) Resolve(now time.Time) (int, int, error) {
	month := p.Month
	if month == 0 {
		month = int(now.Month())
	}
	if err := validation.Month(month); err != nil {
		return 0, 0, err
	}
	year := p.Year
	if year == 0 {
		year = now.Year()
	}
	return month - 1, year, nil
}

// CriteriaFlags are the filter panel options.
type CriteriaFlags struct {
	Categories []string
	From       string
	To         string
	Search     string
}

// Register adds the filter flags to cmd.
func (c *CriteriaFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&c.Categories, "category", "c", nil, "Only include these category ids (repeatable)")
	cmd.Flags().StringVar(&c.From, "from", "", "Only include expenses on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&c.To, "to", "", "Only include expenses on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&c.Search, "search", "s", "", "Only include expenses whose description contains this text")
}

// Criteria validates the flags and returns the filter criteria.
func (c CriteriaFlags) Criteria() (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{SearchTerm: c.Search}

	for _, category := range c.Categories {
		if category = strings.TrimSpace(category); category != "" {
			criteria.Categories = append(criteria.Categories, category)
		}
	}

	var err error
	if c.From != "" {
		if criteria.StartDate, err = validation.Date(c.From); err != nil {
			return models.FilterCriteria{}, err
		}
	}
	if c.To != "" {
		if criteria.EndDate, err = validation.Date(c.To); err != nil {
			return models.FilterCriteria{}, err
		}
	}
	return criteria, nil
}

// SortFlags select the order of an expense list.
type SortFlags struct {
	Key   string
	Order string
}

// Register adds --sort and --order to cmd.
func (s *SortFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.Key, "sort", string(models.SortByDate), "Sort by date, amount or category")
	cmd.Flags().StringVar(&s.Order, "order", string(models.Descending), "Sort order: asc or desc")
}

// Parse validates the sort flags.
func (s SortFlags) Parse() (models.SortKey, models.SortDirection, error) {
	key, err := models.ParseSortKey(strings.ToLower(s.Key))
	if err != nil {
		return "", "", err
	}
	direction, err := models.ParseSortDirection(strings.ToLower(s.Order))
	if err != nil {
		return "", "", err
	}
	return key, direction, nil
}
