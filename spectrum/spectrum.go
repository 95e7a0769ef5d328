package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fourier/series"
)

// Errors returned by spectrum functions.
var (
	ErrSampleCount      = errors.New("spectrum: sample count must be a power of two, at least 2")
	ErrInvalidHarmonics = errors.New("spectrum: harmonics must be >= 0")
	ErrHarmonicBound    = errors.New("spectrum: harmonic count exceeds the resolvable bins")
)

// Coefficients extracts series coefficients from samples of exactly one
// period. harmonics may be at most len(samples)/2 - 1, the highest bin
// below the Nyquist fold.
func Coefficients(samples []float64, harmonics int) (series.Coefficients, error) {
	n := len(samples)
	if n < 2 || !isPowerOfTwo(n) {
		return series.Coefficients{}, fmt.Errorf("%w: got %d", ErrSampleCount, n)
	}

	if harmonics < 0 {
		return series.Coefficients{}, fmt.Errorf("%w: got %d", ErrInvalidHarmonics, harmonics)
	}

	if harmonics > n/2-1 {
		return series.Coefficients{}, fmt.Errorf("%w: got %d, want <= %d",
			ErrHarmonicBound, harmonics, n/2-1)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return series.Coefficients{}, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return series.Coefficients{}, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	scale := 2 / float64(n)

	c := series.Coefficients{
		A0: scale * real(out[0]),
		An: make([]float64, harmonics),
		Bn: make([]float64, harmonics),
	}

	for k := 1; k <= harmonics; k++ {
		c.An[k-1] = scale * real(out[k])
		c.Bn[k-1] = -scale * imag(out[k])
	}

	return c, nil
}

// Magnitude returns sqrt(an^2 + bn^2) for each harmonic.
func Magnitude(c series.Coefficients) []float64 {
	if c.Harmonics() == 0 {
		return nil
	}

	out := make([]float64, c.Harmonics())
	vecmath.Magnitude(out, c.An, c.Bn)

	return out
}

// Power returns an^2 + bn^2 for each harmonic.
func Power(c series.Coefficients) []float64 {
	if c.Harmonics() == 0 {
		return nil
	}

	out := make([]float64, c.Harmonics())
	vecmath.Power(out, c.An, c.Bn)

	return out
}

// Phase returns atan2(bn, an) for each harmonic.
func Phase(c series.Coefficients) []float64 {
	if c.Harmonics() == 0 {
		return nil
	}

	out := make([]float64, c.Harmonics())
	for k := range out {
		out[k] = math.Atan2(c.Bn[k], c.An[k])
	}

	return out
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
