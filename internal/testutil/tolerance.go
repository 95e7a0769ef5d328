package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireNear fails t if got differs from want by more than eps (absolute).
func RequireNear(t *testing.T, got, want, eps float64) {
	t.Helper()
	diff := math.Abs(got - want)
	if math.IsNaN(diff) || diff > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireSliceNear fails t if got and want differ in length or if any
// element pair exceeds eps (absolute tolerance). An eps of 0 demands exact
// equality.
func RequireSliceNear(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if math.IsNaN(diff) || diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any sample degenerated to NaN or an infinity.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d is %v, want finite", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices of
// equal length. A NaN in either slice makes the result NaN rather than
// being skipped.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("testutil: slice lengths differ: %d vs %d", len(a), len(b))
	}

	var maxDiff float64
	for i := range a {
		maxDiff = math.Max(maxDiff, math.Abs(a[i]-b[i]))
	}

	return maxDiff, nil
}
