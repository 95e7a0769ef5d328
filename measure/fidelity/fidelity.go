// Package fidelity measures how faithfully a reconstructed signal tracks
// the original it was derived from.
package fidelity

import (
	"errors"
	"fmt"
	"math"
)

// epsilon guards divisions against a vanishing reference magnitude.
const epsilon = 1e-12

// Errors returned by fidelity functions.
var (
	ErrEmptySignal        = errors.New("fidelity: signal must not be empty")
	ErrLengthMismatch     = errors.New("fidelity: signals must have the same length")
	ErrStageCount         = errors.New("fidelity: progressive stages must cover DC plus every harmonic")
	ErrCoefficientLengths = errors.New("fidelity: an and bn must have the same length")
)

// Result holds reconstruction quality metrics.
//
//nolint:revive
type Result struct {
	RMSError      float64 `json:"rms_error"`
	MaxError      float64 `json:"max_error"`
	SNR_dB        float64 `json:"snr_db"`
	RelativeError float64 `json:"relative_error"`
}

// Compare computes error metrics between an original signal and its
// reconstruction. SNR_dB relates the original's standard deviation to the
// RMS error on a 20*log10 amplitude scale; it is -Inf when the original
// is constant. RelativeError is the RMS error normalized by the same
// standard deviation.
func Compare(original, reconstructed []float64) (Result, error) {
	if len(original) == 0 {
		return Result{}, ErrEmptySignal
	}

	if len(reconstructed) != len(original) {
		return Result{}, fmt.Errorf("%w: got %d, want %d",
			ErrLengthMismatch, len(reconstructed), len(original))
	}

	var sumSq float64

	maxErr := 0.0

	for i := range original {
		d := original[i] - reconstructed[i]
		sumSq += d * d
		maxErr = math.Max(maxErr, math.Abs(d))
	}

	rms := math.Sqrt(sumSq / float64(len(original)))
	std := stdDev(original)

	return Result{
		RMSError:      rms,
		MaxError:      maxErr,
		SNR_dB:        20 * math.Log10(std/(rms+epsilon)),
		RelativeError: rms / (std + epsilon),
	}, nil
}

// stdDev returns the population standard deviation of signal.
func stdDev(signal []float64) float64 {
	var mean float64
	for _, x := range signal {
		mean += x
	}

	mean /= float64(len(signal))

	var sumSq float64

	for _, x := range signal {
		d := x - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// meanSquare returns the average signal power.
func meanSquare(signal []float64) float64 {
	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return sumSq / float64(len(signal))
}
