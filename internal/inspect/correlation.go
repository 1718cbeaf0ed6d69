package inspect

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/tsprep/tsprep/internal/dataset"
)

// correlationMatrix computes pairwise Pearson correlation over the numeric
// columns. Each pair uses only the rows where both columns are non-missing.
// Diagonal entries are 1 for columns with nonzero variance and NaN for
// constant (or empty) columns; the NaN is surfaced, not papered over.
func correlationMatrix(cols []*dataset.Column) *CorrelationMatrix {
	n := len(cols)
	m := &CorrelationMatrix{
		Columns: make([]string, n),
		Values:  make([][]float64, n),
	}
	for i, c := range cols {
		m.Columns[i] = c.Name
		m.Values[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		m.Values[i][i] = diagonal(cols[i])
		for j := i + 1; j < n; j++ {
			r := pairCorrelation(cols[i], cols[j])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

// diagonal is 1 when the column has at least two distinct non-missing
// values, NaN otherwise (zero variance leaves the coefficient undefined).
func diagonal(c *dataset.Column) float64 {
	vals := c.NonMissing()
	if len(vals) < 2 {
		return math.NaN()
	}
	for _, v := range vals[1:] {
		if v != vals[0] {
			return 1.0
		}
	}
	return math.NaN()
}

// pairCorrelation computes Pearson r over the rows where both columns are
// non-missing. Fewer than two shared rows, or a constant column within the
// shared rows, yields NaN.
func pairCorrelation(a, b *dataset.Column) float64 {
	var x, y []float64
	for i := range a.Missing {
		if a.Missing[i] || b.Missing[i] {
			continue
		}
		x = append(x, a.Floats[i])
		y = append(y, b.Floats[i])
	}
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}
