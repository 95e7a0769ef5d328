// Package series computes trigonometric Fourier series approximations of
// periodic signals.
//
// An Analyzer samples a caller-supplied periodic function over one period,
// extracts the DC term and the per-harmonic cosine/sine coefficients by
// trapezoidal integration, and reconstructs time-domain signals from any
// subset of those harmonics:
//
//	f(t) ~ a0/2 + an[k]*cos((k+1)*w0*t) + bn[k]*sin((k+1)*w0*t), k = 0..N-1
//
// with the angular fundamental w0 = 2π/T. Reconstruction is either
// progressive (one partial sum per harmonic count, for convergence studies)
// or selective (an arbitrary mask of enabled harmonics).
//
// Integration samples the half-open interval [0, T): the endpoint aliases
// t=0 for a periodic signal and is excluded. The trapezoidal rule runs over
// the sampled points only; accuracy is controlled solely by the sample
// density (WithPoints), with no adaptive refinement.
package series
