// Package testutil provides assertion helpers shared by the sim/ test
// packages for checking simulation output sequences.
package testutil

import (
	"math"
	"testing"
)

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertStrictlyIncreasing fails if any element of xs is not greater than its predecessor.
func AssertStrictlyIncreasing(t *testing.T, name string, xs []float64) {
	t.Helper()
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Errorf("%s: element %d (%v) not greater than element %d (%v)", name, i, xs[i], i-1, xs[i-1])
			return
		}
	}
}

// AssertUnitInterval fails if any element of xs lies outside [0, 1].
func AssertUnitInterval(t *testing.T, name string, xs []float64) {
	t.Helper()
	for i, x := range xs {
		if x < 0 || x > 1 || math.IsNaN(x) {
			t.Errorf("%s: element %d = %v outside [0, 1]", name, i, x)
			return
		}
	}
}
