// Package analytics is the quality-monitoring computation core: numeric
// aggregation, ISO-week bucketing, statistical anomaly detection, threshold
// alerts and declarative KPI resolution. Every exported function is a pure,
// synchronous transform over its inputs; malformed data degrades to zero or
// absent values instead of raising errors.
package analytics

import (
	"math"
	"sort"
)

// Aggregation methods understood by Aggregate.
const (
	AggMean   = "mean"
	AggMedian = "median"
	AggSum    = "sum"
	AggMin    = "min"
	AggMax    = "max"
	AggCount  = "count"
	AggP95    = "p95"
)

// Aggregate reduces values with the given method. Empty input returns 0 for
// every method, as does an unknown method. p95 is nearest-rank: index
// ceil(0.95*n)-1 on the ascending sort, never interpolated.
func Aggregate(values []float64, method string) float64 {
	if len(values) == 0 {
		return 0
	}
	switch method {
	case AggMean:
		return mean(values)
	case AggMedian:
		sorted := sortedCopy(values)
		mid := len(sorted) / 2
		if len(sorted)%2 == 0 {
			return (sorted[mid-1] + sorted[mid]) / 2
		}
		return sorted[mid]
	case AggSum:
		var sum float64
		for _, v := range values {
			sum += v
		}
		return sum
	case AggMin:
		minV := values[0]
		for _, v := range values[1:] {
			if v < minV {
				minV = v
			}
		}
		return minV
	case AggMax:
		maxV := values[0]
		for _, v := range values[1:] {
			if v > maxV {
				maxV = v
			}
		}
		return maxV
	case AggCount:
		return float64(len(values))
	case AggP95:
		return percentile(values, 0.95)
	default:
		return 0
	}
}

// percentile is nearest-rank on a fresh ascending sort. p is a fraction in
// (0,1]; the index is clamped to >= 0 so tiny inputs select the first value.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := sortedCopy(values)
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationStdDev divides by N, not N-1. Small lookback windows therefore
// see a slightly tighter spread than a sample estimate would give.
func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finiteOnly filters NaN and infinities out into a fresh slice.
func finiteOnly(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if isFinite(v) {
			out = append(out, v)
		}
	}
	return out
}
