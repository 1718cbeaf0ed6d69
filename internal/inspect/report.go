// Package inspect computes the data-quality report for a loaded dataset:
// shape, dtypes, missing values, uniqueness, duplicates, summary statistics,
// correlation, and IQR outlier counts.
package inspect

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/tsprep/tsprep/internal/dataset"
)

// ColumnSummary holds descriptive statistics for one numeric column.
// Count is the number of non-missing values; the remaining fields are NaN
// when too few values exist to define them.
type ColumnSummary struct {
	Count  int
	Mean   float64
	Std    float64 // sample standard deviation (n-1)
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// CorrelationMatrix is a symmetric pairwise Pearson matrix over the numeric
// columns, in declared column order. Entries are NaN where a column has no
// variance over the rows shared by the pair.
type CorrelationMatrix struct {
	Columns []string
	Values  [][]float64
}

// At returns the correlation between two named columns.
func (m *CorrelationMatrix) At(a, b string) (float64, bool) {
	ai, bi := -1, -1
	for i, name := range m.Columns {
		if name == a {
			ai = i
		}
		if name == b {
			bi = i
		}
	}
	if ai < 0 || bi < 0 {
		return 0, false
	}
	return m.Values[ai][bi], true
}

// Report is the composite result of one Inspect call. The per-column maps
// preserve the dataset's declared column order, so iterating a report twice
// yields identical output. Maps keyed by numeric column share one key set:
// exactly the dataset's numeric columns.
type Report struct {
	Rows    int
	Columns int

	DTypes        *orderedmap.OrderedMap[string, dataset.Type]
	MissingCounts *orderedmap.OrderedMap[string, int]
	UniqueCounts  *orderedmap.OrderedMap[string, int]
	DuplicateRows int

	Summary     *orderedmap.OrderedMap[string, ColumnSummary]
	Correlation *CorrelationMatrix
	Outliers    *orderedmap.OrderedMap[string, int]
}
