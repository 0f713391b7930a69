package aggregate

import (
	"fmt"
	"testing"

	"fjacquet/budget-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const propertyIterations = 100

// Property: twelve ordered buckets whose totals add up to the year total
func TestProperty_MonthlyTotalsCoverTheYear(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		t.Run(fmt.Sprintf("iteration_%d", i), func(t *testing.T) {
			records := generateRecords(cryptoRandIntn(60))
			year := 2022 + cryptoRandIntn(3)

			buckets := MonthlyTotals(records, year)

			require.Len(t, buckets, 12)
			sum := decimal.Zero
			count := 0
			for month, b := range buckets {
				assert.Equal(t, month, b.Month)
				sum = sum.Add(b.Total)
				count += b.Count
			}
			yearRecords := SelectByYear(records, year)
			assert.True(t, sum.Equal(Total(yearRecords)), "bucket sum %s != year total %s", sum, Total(yearRecords))
			assert.Equal(t, len(yearRecords), count)
		})
	}
}

// Property: empty criteria is a no-op
func TestProperty_EmptyCriteriaIsNoOp(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		records := generateRecords(cryptoRandIntn(40))

		filtered := Filter(records, models.FilterCriteria{})

		assert.Equal(t, ids(records), ids(filtered))
		assert.True(t, Total(filtered).Equal(Total(records)))
	}
}

// Property: filtering twice with the same criteria changes nothing
func TestProperty_FilterIsIdempotent(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		records := generateRecords(cryptoRandIntn(50))
		criteria := generateCriteria()

		once := Filter(records, criteria)
		twice := Filter(once, criteria)

		assert.Equal(t, ids(once), ids(twice), "criteria: %+v", criteria)
	}
}

// Property: filter keeps a subsequence of the input
func TestProperty_FilterPreservesRelativeOrder(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		records := generateRecords(cryptoRandIntn(50))
		filtered := Filter(records, generateCriteria())

		pos := 0
		for _, f := range filtered {
			for pos < len(records) && records[pos].ID != f.ID {
				pos++
			}
			require.Less(t, pos, len(records), "filtered record %s out of order", f.ID)
			pos++
		}
	}
}

// Property: records with equal keys keep their input order after sorting
func TestProperty_SortIsStable(t *testing.T) {
	keys := []models.SortKey{models.SortByDate, models.SortByAmount, models.SortByCategory}
	directions := []models.SortDirection{models.Ascending, models.Descending}

	for i := 0; i < propertyIterations; i++ {
		records := generateRecords(cryptoRandIntn(40) + 2)
		// Force plenty of ties
		for j := range records {
			if cryptoRandIntn(2) == 0 {
				records[j].Amount = models.NewAmountFromString("10")
				records[j].Date = "2024-01-01"
			}
		}
		key := keys[cryptoRandIntn(len(keys))]
		dir := directions[cryptoRandIntn(len(directions))]

		sorted := Sort(records, key, dir)
		require.Len(t, sorted, len(records))

		inputPos := make(map[string]int, len(records))
		for idx, r := range records {
			inputPos[r.ID] = idx
		}
		compare := comparator(key)
		for j := 1; j < len(sorted); j++ {
			c := compare(sorted[j-1], sorted[j])
			if dir == models.Descending {
				c = -c
			}
			assert.LessOrEqual(t, c, 0, "records out of order for key %s %s", key, dir)
			if c == 0 {
				assert.Less(t, inputPos[sorted[j-1].ID], inputPos[sorted[j].ID],
					"tie between %s and %s not stable", sorted[j-1].ID, sorted[j].ID)
			}
		}
	}
}

// Property: category totals partition the collection
func TestProperty_CategoryTotalsPartitionRecords(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		records := generateRecords(cryptoRandIntn(60))

		totals := CategoryTotals(records)

		sum := decimal.Zero
		count := 0
		seen := make(map[string]bool)
		for _, ct := range totals {
			assert.False(t, seen[ct.Category], "duplicate category %s", ct.Category)
			seen[ct.Category] = true
			sum = sum.Add(ct.Total)
			count += ct.Count
		}
		assert.True(t, sum.Equal(Total(records)))
		assert.Equal(t, len(records), count)
	}
}

// Property: extremes are positive buckets bounding every other positive bucket
func TestProperty_ExtremesBoundPositiveMonths(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		records := generateRecords(cryptoRandIntn(30))
		buckets := MonthlyTotals(records, 2023)

		extremes := YearlyExtremes(buckets)

		anyPositive := false
		for _, b := range buckets {
			if !b.Total.IsPositive() {
				continue
			}
			anyPositive = true
			assert.True(t, b.Total.LessThanOrEqual(extremes.Highest.Total))
			assert.True(t, b.Total.GreaterThanOrEqual(extremes.Lowest.Total))
		}
		if !anyPositive {
			assert.True(t, extremes.Highest.IsSentinel())
			assert.True(t, extremes.Lowest.IsSentinel())
		} else {
			assert.False(t, extremes.Highest.IsSentinel())
			assert.False(t, extremes.Lowest.IsSentinel())
		}
	}
}

// Property: available years are distinct and strictly descending
func TestProperty_AvailableYearsDescending(t *testing.T) {
	for i := 0; i < propertyIterations; i++ {
		years := AvailableYears(generateRecords(cryptoRandIntn(30)))
		for j := 1; j < len(years); j++ {
			assert.Greater(t, years[j-1], years[j])
		}
	}
}
