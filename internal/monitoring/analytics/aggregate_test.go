package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateMedian(t *testing.T) {
	assert.Equal(t, 2.5, Aggregate([]float64{1, 2, 3, 4}, AggMedian))
	assert.Equal(t, 2.0, Aggregate([]float64{1, 2, 3}, AggMedian))
	assert.Equal(t, 2.0, Aggregate([]float64{3, 1, 2}, AggMedian))
}

func TestAggregateP95NearestRank(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i + 1)
	}
	// ceil(0.95*100)-1 = 94 -> value 95, no interpolation
	assert.Equal(t, 95.0, Aggregate(values, AggP95))

	assert.Equal(t, 1.0, Aggregate([]float64{1}, AggP95))
	assert.Equal(t, 2.0, Aggregate([]float64{1, 2}, AggP95))
}

func TestAggregateBasicMethods(t *testing.T) {
	values := []float64{4, 1, 3, 2}
	assert.Equal(t, 2.5, Aggregate(values, AggMean))
	assert.Equal(t, 10.0, Aggregate(values, AggSum))
	assert.Equal(t, 1.0, Aggregate(values, AggMin))
	assert.Equal(t, 4.0, Aggregate(values, AggMax))
	assert.Equal(t, 4.0, Aggregate(values, AggCount))
}

func TestAggregateEmptyAndUnknown(t *testing.T) {
	for _, method := range []string{AggMean, AggMedian, AggSum, AggMin, AggMax, AggCount, AggP95} {
		assert.Equal(t, 0.0, Aggregate(nil, method), method)
	}
	assert.Equal(t, 0.0, Aggregate([]float64{1, 2}, "mode"))
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Aggregate(values, AggMedian)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestPopulationStdDev(t *testing.T) {
	// Population variance divides by N.
	assert.InDelta(t, 2.0, populationStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
	assert.Equal(t, 0.0, populationStdDev([]float64{3, 3, 3}))
	assert.Equal(t, 0.0, populationStdDev(nil))
}
