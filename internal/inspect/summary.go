package inspect

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// summarize computes descriptive statistics over a column's non-missing
// values. Zero values yields a summary with Count 0 and NaN statistics,
// matching how an all-missing column reads in the report.
func summarize(values []float64) (ColumnSummary, error) {
	if len(values) == 0 {
		nan := math.NaN()
		return ColumnSummary{
			Count: 0,
			Mean:  nan, Std: nan,
			Min: nan, Q25: nan, Median: nan, Q75: nan, Max: nan,
		}, nil
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return ColumnSummary{}, fmt.Errorf("mean: %w", err)
	}
	min, err := stats.Min(values)
	if err != nil {
		return ColumnSummary{}, fmt.Errorf("min: %w", err)
	}
	max, err := stats.Max(values)
	if err != nil {
		return ColumnSummary{}, fmt.Errorf("max: %w", err)
	}

	// Sample standard deviation is undefined for a single value.
	std := math.NaN()
	if len(values) > 1 {
		std, err = stats.StandardDeviationSample(values)
		if err != nil {
			return ColumnSummary{}, fmt.Errorf("std: %w", err)
		}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return ColumnSummary{
		Count:  len(values),
		Mean:   mean,
		Std:    std,
		Min:    min,
		Q25:    percentile(sorted, 0.25),
		Median: percentile(sorted, 0.50),
		Q75:    percentile(sorted, 0.75),
		Max:    max,
	}, nil
}

// percentile returns the q-quantile of an ascending-sorted slice using
// linear interpolation between order statistics: the quantile sits at rank
// q*(n-1) and fractional ranks blend the two neighbouring values. This is
// the definition the summary table and the outlier fences both rely on.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
