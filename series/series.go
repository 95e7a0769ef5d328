package series

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const defaultPoints = 2000

// Func is a caller-supplied periodic signal generator. It receives the time
// grid to evaluate and must return exactly one sample per time value. The
// engine never inspects the function beyond calling it; an error return
// aborts the analysis and is handed back to the caller unchanged.
type Func func(t []float64) ([]float64, error)

// Coefficients holds a trigonometric Fourier series: the DC term A0 and the
// cosine/sine coefficients of harmonics 1..N, where An[k] and Bn[k] belong
// to harmonic k+1. An and Bn always have the same length.
type Coefficients struct {
	A0 float64
	An []float64
	Bn []float64
}

// Harmonics returns the harmonic count N.
func (c Coefficients) Harmonics() int {
	return len(c.An)
}

func (c Coefficients) validate() error {
	if len(c.An) != len(c.Bn) {
		return fmt.Errorf("%w: len(an)=%d, len(bn)=%d", ErrCoefficientLengths, len(c.An), len(c.Bn))
	}

	return nil
}

// Analyzer extracts Fourier coefficients for one fixed period and
// reconstructs signals from them. It holds nothing beyond the configured
// period and sample density; every method is a pure function of its inputs
// and safe for concurrent use.
type Analyzer struct {
	period float64
	points int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithPoints sets the number of integration sample points per period.
// The default is 2000.
func WithPoints(n int) Option {
	return func(a *Analyzer) {
		a.points = n
	}
}

// NewAnalyzer creates an Analyzer for signals of the given period.
func NewAnalyzer(period float64, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		period: period,
		points: defaultPoints,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	if period <= 0 || math.IsNaN(period) || math.IsInf(period, 0) {
		return nil, ErrInvalidPeriod
	}

	if a.points < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPoints, a.points)
	}

	return a, nil
}

// Period returns the configured period.
func (a *Analyzer) Period() float64 { return a.period }

// Points returns the configured integration sample count.
func (a *Analyzer) Points() int { return a.points }

// Omega0 returns the angular fundamental frequency 2π/period.
func (a *Analyzer) Omega0() float64 { return 2 * math.Pi / a.period }

// SampleTimes returns the integration grid: Points() equally spaced values
// on the half-open interval [0, period).
func (a *Analyzer) SampleTimes() []float64 {
	step := a.period / float64(a.points)

	t := make([]float64, a.points)
	for i := range t {
		t[i] = float64(i) * step
	}

	return t
}

// Sample evaluates fn on the integration grid and returns the grid together
// with the samples. A wrong-length result is rejected; an error from fn is
// returned unchanged.
func (a *Analyzer) Sample(fn Func) (t, samples []float64, err error) {
	if fn == nil {
		return nil, nil, ErrNilFunction
	}

	t = a.SampleTimes()

	samples, err = fn(t)
	if err != nil {
		return nil, nil, err
	}

	if len(samples) != len(t) {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrSampleLength, len(samples), len(t))
	}

	return t, samples, nil
}

// Coefficients samples fn over one period and extracts the DC term plus the
// first harmonics cosine/sine coefficient pairs:
//
//	a0    = (2/T) * integral of f(t)
//	an[k] = (2/T) * integral of f(t)*cos((k+1)*w0*t)
//	bn[k] = (2/T) * integral of f(t)*sin((k+1)*w0*t)
//
// The integrals run over the sampled points of [0, T) using the trapezoidal
// rule; the discretization error shrinks with higher WithPoints values.
func (a *Analyzer) Coefficients(fn Func, harmonics int) (Coefficients, error) {
	if harmonics < 0 {
		return Coefficients{}, fmt.Errorf("%w: %d", ErrInvalidHarmonics, harmonics)
	}

	t, samples, err := a.Sample(fn)
	if err != nil {
		return Coefficients{}, err
	}

	step := a.period / float64(a.points)
	scale := 2 / a.period

	c := Coefficients{
		A0: scale * trapezoid(samples, step),
		An: make([]float64, harmonics),
		Bn: make([]float64, harmonics),
	}

	if harmonics == 0 {
		return c, nil
	}

	omega0 := a.Omega0()
	cosv := make([]float64, len(t))
	sinv := make([]float64, len(t))
	integrand := make([]float64, len(t))

	for k := 1; k <= harmonics; k++ {
		w := float64(k) * omega0
		for i, ti := range t {
			sinv[i], cosv[i] = math.Sincos(w * ti)
		}

		vecmath.MulBlock(integrand, samples, cosv)
		c.An[k-1] = scale * trapezoid(integrand, step)

		vecmath.MulBlock(integrand, samples, sinv)
		c.Bn[k-1] = scale * trapezoid(integrand, step)
	}

	return c, nil
}

// Compute is a one-shot coefficient extraction using the default sample
// density.
func Compute(fn Func, period float64, harmonics int) (Coefficients, error) {
	a, err := NewAnalyzer(period)
	if err != nil {
		return Coefficients{}, err
	}

	return a.Coefficients(fn, harmonics)
}

// trapezoid integrates uniformly spaced samples with spacing step using the
// trapezoidal rule. Only the sampled points contribute; on a half-open
// period grid the panel between the final sample and the period end is not
// part of the sum.
func trapezoid(y []float64, step float64) float64 {
	if len(y) < 2 {
		return 0
	}

	sum := 0.5 * (y[0] + y[len(y)-1])
	for _, v := range y[1 : len(y)-1] {
		sum += v
	}

	return sum * step
}
