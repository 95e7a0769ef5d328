package testutil

import "math"

// SineFunc returns a vectorized generator for amplitude*sin(2πt/period).
// The closure shape matches the engine's periodic-function contract.
func SineFunc(amplitude, period float64) func(t []float64) ([]float64, error) {
	omega0 := 2 * math.Pi / period

	return func(t []float64) ([]float64, error) {
		out := make([]float64, len(t))
		for i, ti := range t {
			out[i] = amplitude * math.Sin(omega0*ti)
		}
		return out, nil
	}
}

// SquareFunc returns a vectorized generator for a bipolar square wave:
// +amplitude on the first half period, -amplitude on the second.
func SquareFunc(amplitude, period float64) func(t []float64) ([]float64, error) {
	return func(t []float64) ([]float64, error) {
		out := make([]float64, len(t))
		for i, ti := range t {
			if math.Mod(ti, period) < period/2 {
				out[i] = amplitude
			} else {
				out[i] = -amplitude
			}
		}
		return out, nil
	}
}

// ConstFunc returns a vectorized generator for a constant signal.
func ConstFunc(value float64) func(t []float64) ([]float64, error) {
	return func(t []float64) ([]float64, error) {
		out := make([]float64, len(t))
		for i := range out {
			out[i] = value
		}
		return out, nil
	}
}

// SquarePartialSum evaluates the analytic Fourier partial sum of a bipolar
// square wave over t: the odd harmonics k with coefficient 4*amplitude/(kπ)
// on the sine term, up to and including harmonic count harmonics.
func SquarePartialSum(amplitude, period float64, harmonics int, t []float64) []float64 {
	omega0 := 2 * math.Pi / period

	out := make([]float64, len(t))
	for k := 1; k <= harmonics; k += 2 {
		bk := 4 * amplitude / (float64(k) * math.Pi)
		for i, ti := range t {
			out[i] += bk * math.Sin(float64(k)*omega0*ti)
		}
	}
	return out
}

// Constant returns a slice of length n filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp returns a slice of length n with values 0, 1, ..., n-1.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
