package harmonics

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fourier/internal/testutil"
	"github.com/cwbudde/algo-fourier/series"
)

func TestAnalyzeValidation(t *testing.T) {
	if _, err := Analyze([]float64{1}, []float64{1, 2}); !errors.Is(err, ErrCoefficientLengths) {
		t.Fatalf("expected ErrCoefficientLengths, got %v", err)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	a, err := Analyze(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Magnitude) != 0 || len(a.Phase) != 0 || len(a.Power) != 0 {
		t.Fatal("expected empty breakdown")
	}

	if len(a.Dominant) != 0 {
		t.Fatalf("expected no dominant harmonics, got %v", a.Dominant)
	}

	testutil.RequireNear(t, a.TotalPower, 0, 0)
	testutil.RequireNear(t, a.FundamentalPower, 0, 0)
	testutil.RequireNear(t, a.THD, 0, 0)
}

func TestAnalyzeTwoHarmonics(t *testing.T) {
	an := []float64{3, 0.3}
	bn := []float64{4, 0.4}

	a, err := Analyze(an, bn)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNear(t, a.Magnitude, []float64{5, 0.5}, 1e-15)
	testutil.RequireSliceNear(t, a.Power, []float64{25, 0.25}, 1e-14)
	testutil.RequireNear(t, a.TotalPower, 25.25, 1e-13)
	testutil.RequireNear(t, a.FundamentalPower, 25, 1e-13)

	testutil.RequireNear(t, a.Phase[0], math.Atan2(4, 3), 0)
	testutil.RequireNear(t, a.Phase[1], math.Atan2(0.4, 0.3), 0)

	// The second harmonic holds 1% of the fundamental's power.
	testutil.RequireNear(t, a.THD, 10, 1e-9)
	testutil.RequireNear(t, a.PowerPercentage[0], 100*25/25.25, 1e-9)
	testutil.RequireNear(t, a.PowerPercentage[1], 100*0.25/25.25, 1e-9)

	if len(a.Dominant) != 2 || a.Dominant[0] != 1 || a.Dominant[1] != 2 {
		t.Fatalf("unexpected dominant order %v", a.Dominant)
	}
}

func TestAnalyzePureFundamental(t *testing.T) {
	a, err := Analyze([]float64{0}, []float64{2})
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNear(t, a.Magnitude[0], 2, 1e-15)
	testutil.RequireNear(t, a.Phase[0], math.Pi/2, 0)
	testutil.RequireNear(t, a.THD, 0, 0)
	testutil.RequireNear(t, a.PowerPercentage[0], 100, 1e-9)
}

func TestAnalyzeSineNearZeroTHD(t *testing.T) {
	const period = 2 * math.Pi

	c, err := series.Compute(testutil.SineFunc(1, period), period, 5)
	if err != nil {
		t.Fatal(err)
	}

	a, err := Analyze(c.An, c.Bn)
	if err != nil {
		t.Fatal(err)
	}

	if a.Dominant[0] != 1 {
		t.Fatalf("expected the fundamental to dominate, got %v", a.Dominant)
	}

	// Harmonics above the fundamental carry only integration residue.
	if a.THD > 1e-2 {
		t.Fatalf("sine THD = %v, want near zero", a.THD)
	}

	testutil.RequireNear(t, a.PowerPercentage[0], 100, 1e-6)
}

func TestAnalyzeDominantOrdering(t *testing.T) {
	an := []float64{0, 3, 0, 3, 0, 5, 1}
	bn := make([]float64, len(an))

	a, err := Analyze(an, bn)
	if err != nil {
		t.Fatal(err)
	}

	// Stable sort keeps the equal-magnitude pair (harmonics 2 and 4) in
	// ascending order.
	want := []int{6, 2, 4, 7, 1}
	if len(a.Dominant) != len(want) {
		t.Fatalf("expected %d dominant harmonics, got %v", len(want), a.Dominant)
	}

	for i, h := range want {
		if a.Dominant[i] != h {
			t.Fatalf("dominant[%d] = %d, want %d (full order %v)", i, a.Dominant[i], h, a.Dominant)
		}
	}
}

func TestAnalyzeDominantShortSet(t *testing.T) {
	a, err := Analyze([]float64{1, 2}, []float64{0, 0})
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Dominant) != 2 || a.Dominant[0] != 2 || a.Dominant[1] != 1 {
		t.Fatalf("unexpected dominant order %v", a.Dominant)
	}
}

func TestAnalyzeSquareWaveContent(t *testing.T) {
	const period = 2 * math.Pi

	c, err := series.Compute(testutil.SquareFunc(1, period), period, 15)
	if err != nil {
		t.Fatal(err)
	}

	a, err := Analyze(c.An, c.Bn)
	if err != nil {
		t.Fatal(err)
	}

	if a.Dominant[0] != 1 {
		t.Fatalf("expected the fundamental to dominate, got %v", a.Dominant)
	}

	// b1 = 4/pi, so fundamental power is (4/pi)^2.
	testutil.RequireNear(t, a.FundamentalPower, 16/(math.Pi*math.Pi), 1e-2)

	// Truncated at 15 harmonics the odd-harmonic distortion sits a little
	// under the 48.3% of the full series.
	if a.THD < 40 || a.THD > 50 {
		t.Fatalf("square wave THD out of range: %v", a.THD)
	}

	var pctSum float64
	for _, p := range a.PowerPercentage {
		pctSum += p
	}

	testutil.RequireNear(t, pctSum, 100, 1e-6)
}
