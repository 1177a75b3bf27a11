// Package aggregate provides the statistical primitives used everywhere a
// collection of scores is reduced to a single number: simple mean, median,
// 10% trimmed mean, and weighted mean. All functions are pure and total:
// empty input yields 0, never NaN and never a panic.
package aggregate

import (
	"fmt"
	"math"
	"sort"
)

// Method selects the statistical reduction applied to a score collection.
type Method string

const (
	// MethodSimple is the arithmetic mean.
	MethodSimple Method = "simple"
	// MethodMedian is the conventional statistical median.
	MethodMedian Method = "median"
	// MethodTrimmed is a 10% trimmed mean with a guard that falls back to
	// the simple mean when trimming would consume the whole set.
	MethodTrimmed Method = "trimmed"
	// MethodWeighted is the weighted-mean mode. Without per-item weights it
	// reduces to the simple mean; WeightedBy is the true weighted path.
	MethodWeighted Method = "weighted"
)

// String returns the string representation of the method.
func (m Method) String() string { return string(m) }

// ParseMethod validates a method string from config or CLI input.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodSimple, MethodMedian, MethodTrimmed, MethodWeighted:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown aggregation method %q (want simple, median, trimmed, or weighted)", s)
}

// Aggregate reduces values with the given method. An empty slice returns 0
// for every method. Unknown methods fall back to the simple mean.
func Aggregate(values []float64, method Method) float64 {
	if len(values) == 0 {
		return 0
	}
	switch method {
	case MethodMedian:
		return median(values)
	case MethodTrimmed:
		return trimmedMean(values)
	default:
		// simple and weighted-without-weights reduce to the plain mean.
		return mean(values)
	}
}

// WeightedBy computes the true weighted mean: sum(v*w) / sum(w), not divided
// by count. It returns 0 when the slices differ in length or all weights are
// zero, so callers can feed dimension weights straight through.
func WeightedBy(values, weights []float64) float64 {
	if len(values) == 0 || len(values) != len(weights) {
		return 0
	}
	var sum, wsum float64
	for i, v := range values {
		sum += v * weights[i]
		wsum += weights[i]
	}
	if wsum == 0 {
		return 0
	}
	return sum / wsum
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func trimmedMean(values []float64) float64 {
	n := len(values)
	trim := int(math.Floor(float64(n) * 0.1))
	if trim < 1 {
		trim = 1
	}
	// Trimming both ends must leave at least one value.
	if n <= 2*trim {
		return mean(values)
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return mean(sorted[trim : n-trim])
}
