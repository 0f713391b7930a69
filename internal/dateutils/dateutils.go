// Package dateutils provides calendar-date parsing and formatting used throughout the application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Common date layouts used throughout the application
const (
	DateLayoutISO     = "2006-01-02"
	DateLayoutDisplay = "Jan 02, 2006"

	// dateLayoutUnpadded accepts dates like 2024-3-5.
	dateLayoutUnpadded = "2006-1-2"
)

// timestampLayouts are accepted in addition to plain ISO dates. The calendar
// components are taken as written, the offset is never applied.
var timestampLayouts = []string{
	dateLayoutUnpadded,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Date is a calendar date without time-of-day. Month is 1-based like time.Month.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate extracts the calendar components of an ISO-8601 date or timestamp.
func ParseDate(dateStr string) (Date, error) {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return Date{}, fmt.Errorf("unable to parse date: empty string")
	}

	if t, err := time.Parse(DateLayoutISO, s); err == nil {
		return FromTime(t), nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}

	return Date{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// FromTime returns the calendar components of t in its own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// MonthIndex returns the 0-based month (0 = January).
func (d Date) MonthIndex() int {
	return int(d.Month) - 1
}

// Compare returns -1, 0 or 1 ordering d against other chronologically.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MonthKey returns the YYYY-MM bucket key of the date.
func (d Date) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}

// FormatDisplay renders an ISO date as "Mar 05, 2024". It returns an empty
// string when the input cannot be parsed.
func FormatDisplay(dateStr string) string {
	d, err := ParseDate(dateStr)
	if err != nil {
		return ""
	}
	return d.Time().Format(DateLayoutDisplay)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthName returns the full English name for a 0-based month index.
func MonthName(monthIndex int) string {
	if monthIndex < 0 || monthIndex > 11 {
		return ""
	}
	return monthNames[monthIndex]
}

// MonthAbbrev returns the three-letter abbreviation for a 0-based month index.
func MonthAbbrev(monthIndex int) string {
	name := MonthName(monthIndex)
	if name == "" {
		return ""
	}
	return name[:3]
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
