package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateSimple(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"typical", []float64{2, 4, 6}, 4},
		{"single element", []float64{7}, 7},
		{"duplicates", []float64{5, 5, 5, 5}, 5},
		{"all zero", []float64{0, 0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Aggregate(tt.values, MethodSimple), 1e-9)
		})
	}
}

func TestAggregateMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"odd length", []float64{1, 2, 3}, 2},
		{"even length", []float64{1, 2, 3, 4}, 2.5},
		{"unsorted input", []float64{9, 1, 5}, 5},
		{"duplicates", []float64{2, 2, 8, 8}, 5},
		{"single element", []float64{3}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Aggregate(tt.values, MethodMedian), 1e-9)
		})
	}
}

func TestAggregateMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Aggregate(values, MethodMedian)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestAggregateTrimmed(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		// n <= 2*trimCount: guard falls back to the plain mean.
		{"one element", []float64{10}, 10},
		{"two elements", []float64{2, 4}, 3},
		// n=3, trim=1: drops 1 and 100, keeps the middle.
		{"three elements drops extremes", []float64{1, 5, 100}, 5},
		// n=10, trim=1: drops 0 and 100.
		{"ten elements", []float64{0, 5, 5, 5, 5, 5, 5, 5, 5, 100}, 5},
		// n=20, trim=2.
		{"twenty elements", []float64{0, 0, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 99, 99}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Aggregate(tt.values, MethodTrimmed), 1e-9)
		})
	}
}

func TestAggregateEmptyReturnsZero(t *testing.T) {
	for _, method := range []Method{MethodSimple, MethodMedian, MethodTrimmed, MethodWeighted} {
		t.Run(method.String(), func(t *testing.T) {
			assert.Zero(t, Aggregate(nil, method))
			assert.Zero(t, Aggregate([]float64{}, method))
		})
	}
}

func TestAggregateWeightedWithoutWeightsEqualsSimple(t *testing.T) {
	values := []float64{3, 7, 8, 2}
	assert.Equal(t, Aggregate(values, MethodSimple), Aggregate(values, MethodWeighted))
}

func TestWeightedBy(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		weights  []float64
		expected float64
	}{
		{"equal weights match mean", []float64{2, 4, 6}, []float64{1, 1, 1}, 4},
		{"skewed weights", []float64{10, 0}, []float64{3, 1}, 7.5},
		{"divides by weight sum not count", []float64{4}, []float64{50}, 4},
		{"zero weight sum", []float64{1, 2}, []float64{0, 0}, 0},
		{"length mismatch", []float64{1, 2, 3}, []float64{1}, 0},
		{"empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, WeightedBy(tt.values, tt.weights), 1e-9)
		})
	}
}

func TestParseMethod(t *testing.T) {
	for _, valid := range []string{"simple", "median", "trimmed", "weighted"} {
		m, err := ParseMethod(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, m.String())
	}
	_, err := ParseMethod("harmonic")
	assert.Error(t, err)
}
