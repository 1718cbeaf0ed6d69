package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountOutliersIQRRule(t *testing.T) {
	// Q1=2.25, Q3=4.75, IQR=2.5, fences (-1.5, 8.5): only 100 is outside.
	values := []float64{1, 2, 3, 4, 5, 100}
	assert.Equal(t, 1, CountOutliers(values, 1.5))
}

func TestCountOutliersConstantColumn(t *testing.T) {
	// IQR collapses to zero; values equal to the fence are not flagged.
	values := []float64{5, 5, 5, 5}
	assert.Equal(t, 0, CountOutliers(values, 1.5))
}

func TestCountOutliersNearConstant(t *testing.T) {
	// Q1=Q3=1 so both fences sit between -1 and 3; the 9 is outside.
	values := []float64{1, 1, 1, 9}
	assert.Equal(t, 1, CountOutliers(values, 1.5))
}

func TestCountOutliersEmptyInput(t *testing.T) {
	assert.Equal(t, 0, CountOutliers(nil, 1.5))
	assert.Equal(t, 0, CountOutliers([]float64{}, 1.5))
}

func TestCountOutliersOrderIndependent(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 100}
	b := []float64{100, 5, 1, 4, 2, 3}
	assert.Equal(t, CountOutliers(a, 1.5), CountOutliers(b, 1.5))
}

func TestCountOutliersDoesNotMutateInput(t *testing.T) {
	values := []float64{100, 5, 1, 4, 2, 3}
	CountOutliers(values, 1.5)
	assert.Equal(t, []float64{100, 5, 1, 4, 2, 3}, values)
}

func TestCountOutliersWiderMultiplier(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 100}
	// With a 40x fence the IQR of 2.5 reaches past 100.
	assert.Equal(t, 0, CountOutliers(values, 40))
}

func TestOutlierBounds(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 100}
	b := outlierBounds(sorted, 1.5)
	assert.InDelta(t, -1.5, b.Lower, 1e-12)
	assert.InDelta(t, 8.5, b.Upper, 1e-12)
}
