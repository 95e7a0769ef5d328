package series

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Progressive reconstructs the cumulative partial sums of the series over t.
//
// The result has Harmonics()+1 stages: stage 0 is the DC-only signal a0/2
// broadcast over t, and stage i adds harmonic i's contribution
//
//	an[i-1]*cos(i*w0*t) + bn[i-1]*sin(i*w0*t)
//
// to stage i-1. The final stage is the full reconstruction; consecutive
// stages differ by exactly one harmonic.
func (a *Analyzer) Progressive(c Coefficients, t []float64) ([][]float64, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	stages := make([][]float64, c.Harmonics()+1)

	cur := dcSignal(c.A0, len(t))
	stages[0] = append([]float64(nil), cur...)

	omega0 := a.Omega0()

	buf := newSynthBuffers(len(t))
	for k := 1; k <= c.Harmonics(); k++ {
		buf.accumulate(cur, t, float64(k)*omega0, c.An[k-1], c.Bn[k-1])
		stages[k] = append([]float64(nil), cur...)
	}

	return stages, nil
}

// Selective reconstructs a partial sum from an arbitrary subset of
// harmonics. Harmonic k+1 contributes iff mask[k] is true and k+1 is within
// the coefficient set; mask entries beyond the harmonic count are ignored
// and harmonics beyond the mask length stay disabled. A nil or all-false
// mask yields the DC-only signal.
func (a *Analyzer) Selective(c Coefficients, t []float64, mask []bool) ([]float64, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	out := dcSignal(c.A0, len(t))

	n := min(c.Harmonics(), len(mask))
	omega0 := a.Omega0()

	buf := newSynthBuffers(len(t))
	for k := 1; k <= n; k++ {
		if !mask[k-1] {
			continue
		}

		buf.accumulate(out, t, float64(k)*omega0, c.An[k-1], c.Bn[k-1])
	}

	return out, nil
}

// Reconstruct returns the full partial sum using every harmonic in c. It
// equals the final Progressive stage without materializing the intermediate
// ones.
func (a *Analyzer) Reconstruct(c Coefficients, t []float64) ([]float64, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	out := dcSignal(c.A0, len(t))

	omega0 := a.Omega0()

	buf := newSynthBuffers(len(t))
	for k := 1; k <= c.Harmonics(); k++ {
		buf.accumulate(out, t, float64(k)*omega0, c.An[k-1], c.Bn[k-1])
	}

	return out, nil
}

func dcSignal(a0 float64, n int) []float64 {
	out := make([]float64, n)

	dc := a0 / 2
	for i := range out {
		out[i] = dc
	}

	return out
}

// synthBuffers holds per-call scratch for harmonic accumulation. The
// progressive, selective, and full reconstructions all go through the same
// accumulate sequence, so partial sums built from the same coefficients
// agree exactly, not just within tolerance.
type synthBuffers struct {
	cosv []float64
	sinv []float64
	term []float64
}

func newSynthBuffers(n int) *synthBuffers {
	return &synthBuffers{
		cosv: make([]float64, n),
		sinv: make([]float64, n),
		term: make([]float64, n),
	}
}

// accumulate adds ak*cos(w*t) + bk*sin(w*t) to dst elementwise.
func (b *synthBuffers) accumulate(dst, t []float64, w, ak, bk float64) {
	for i, ti := range t {
		b.sinv[i], b.cosv[i] = math.Sincos(w * ti)
	}

	vecmath.ScaleBlock(b.term, b.cosv, ak)
	vecmath.AddBlockInPlace(dst, b.term)
	vecmath.ScaleBlock(b.term, b.sinv, bk)
	vecmath.AddBlockInPlace(dst, b.term)
}
