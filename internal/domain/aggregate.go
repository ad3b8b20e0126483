package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Aggregate sums ingredient amounts per IngredientKey. The result is sorted
// by ingredient name in the collation order of tag, then by measurement
// unit, so the same cart always yields the same rows.
func Aggregate(lines []IngredientLine, tag language.Tag) []AggregateLine {
	totals := make(map[IngredientKey]uint64, len(lines))
	for _, line := range lines {
		if line.Amount <= 0 {
			continue
		}
		totals[line.Key] += uint64(line.Amount)
	}

	result := make([]AggregateLine, 0, len(totals))
	for key, total := range totals {
		result = append(result, AggregateLine{Key: key, Total: total})
	}

	// collate.Collator is not safe for concurrent use
	c := collate.New(tag)
	slices.SortFunc(result, func(a, b AggregateLine) int {
		if n := c.CompareString(a.Key.Name, b.Key.Name); n != 0 {
			return n
		}
		if n := c.CompareString(a.Key.MeasurementUnit, b.Key.MeasurementUnit); n != 0 {
			return n
		}
		if n := strings.Compare(a.Key.Name, b.Key.Name); n != 0 {
			return n
		}
		return strings.Compare(a.Key.MeasurementUnit, b.Key.MeasurementUnit)
	})

	return result
}
