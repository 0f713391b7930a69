package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name       string
		dateStr    string
		expectedOk bool
		expected   Date
	}{
		{"ISO date", "2024-03-05", true, Date{2024, time.March, 5}},
		{"ISO date with spaces", "  2024-03-05 ", true, Date{2024, time.March, 5}},
		{"UTC timestamp", "2024-03-05T10:00:00Z", true, Date{2024, time.March, 5}},
		{"Offset keeps written day", "2024-03-31T23:30:00-05:00", true, Date{2024, time.March, 31}},
		{"Positive offset keeps written day", "2024-01-01T00:30:00+05:30", true, Date{2024, time.January, 1}},
		{"Nanosecond timestamp", "2023-12-31T23:59:59.123Z", true, Date{2023, time.December, 31}},
		{"Local timestamp", "2022-07-14 08:00:00", true, Date{2022, time.July, 14}},
		{"Unpadded date", "2024-3-5", true, Date{2024, time.March, 5}},
		{"Partly padded date", "2024-11-05", true, Date{2024, time.November, 5}},
		{"Unpadded impossible day", "2023-2-29", false, Date{}},
		{"Empty string", "", false, Date{}},
		{"Invalid format", "not a date", false, Date{}},
		{"Impossible day", "2024-02-30", false, Date{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseDate(tc.dateStr)
			if !tc.expectedOk {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, date)
		})
	}
}

func TestDate_MonthIndex(t *testing.T) {
	assert.Equal(t, 0, Date{2024, time.January, 1}.MonthIndex())
	assert.Equal(t, 11, Date{2024, time.December, 1}.MonthIndex())
}

func TestDate_Compare(t *testing.T) {
	base := Date{2024, time.March, 5}

	assert.Equal(t, 0, base.Compare(Date{2024, time.March, 5}))
	assert.Equal(t, -1, base.Compare(Date{2024, time.March, 6}))
	assert.Equal(t, 1, base.Compare(Date{2024, time.February, 29}))
	assert.Equal(t, -1, base.Compare(Date{2025, time.January, 1}))
	assert.Equal(t, 1, base.Compare(Date{2023, time.December, 31}))
}

func TestDate_StringAndKeys(t *testing.T) {
	d := Date{2024, time.March, 5}
	assert.Equal(t, "2024-03-05", d.String())
	assert.Equal(t, "2024-03", d.MonthKey())
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "Mar 05, 2024", FormatDisplay("2024-03-05"))
	assert.Equal(t, "Dec 31, 2023", FormatDisplay("2023-12-31T22:00:00-04:00"))
	assert.Equal(t, "", FormatDisplay("garbage"))
	assert.Equal(t, "Mar 05, 2024", FormatDisplay("2024-3-5"))
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2024-10-01", ToISODate(time.Date(2024, time.October, 1, 15, 0, 0, 0, time.UTC)))
}

func TestMonthNames(t *testing.T) {
	assert.Equal(t, "January", MonthName(0))
	assert.Equal(t, "December", MonthName(11))
	assert.Equal(t, "", MonthName(12))
	assert.Equal(t, "", MonthName(-1))

	assert.Equal(t, "Jan", MonthAbbrev(0))
	assert.Equal(t, "Sep", MonthAbbrev(8))
	assert.Equal(t, "", MonthAbbrev(12))
}
