package inspect

import "sort"

// bounds holds the IQR fences for one numeric column. Values equal to a
// fence are inside it; only values strictly beyond are flagged.
type bounds struct {
	Lower float64
	Upper float64
}

// outlierBounds computes Q1/Q3 of sorted values via linear interpolation
// between order statistics and widens them by multiplier IQRs.
func outlierBounds(sorted []float64, multiplier float64) bounds {
	q1 := percentile(sorted, 0.25)
	q3 := percentile(sorted, 0.75)
	iqr := q3 - q1
	return bounds{
		Lower: q1 - multiplier*iqr,
		Upper: q3 + multiplier*iqr,
	}
}

// CountOutliers returns the number of values strictly outside the IQR fences.
// The input is the column's non-missing values; it is not mutated, and the
// result is independent of value order. An empty input yields zero.
func CountOutliers(values []float64, multiplier float64) int {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	b := outlierBounds(sorted, multiplier)

	count := 0
	for _, v := range sorted {
		if v < b.Lower || v > b.Upper {
			count++
		}
	}
	return count
}
