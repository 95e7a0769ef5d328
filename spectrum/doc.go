// Package spectrum extracts trigonometric series coefficients from
// uniformly sampled data with a forward FFT instead of quadrature.
//
// For n samples covering exactly one period on the half-open grid
// t[i] = i*T/n, the DFT bins map directly onto the series coefficients:
//
//	a0      = 2*Re(X[0])/n
//	an[k-1] = 2*Re(X[k])/n
//	bn[k-1] = -2*Im(X[k])/n
//
// The mapping holds only while bin k and harmonic k coincide, so
// Coefficients requires a power-of-two sample count outright instead of
// zero-padding, which would stretch the bin spacing away from the
// harmonic spacing.
package spectrum
