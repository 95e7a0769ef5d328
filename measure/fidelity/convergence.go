package fidelity

import (
	"fmt"
	"math"
)

// ConvergencePoint describes reconstruction quality after truncating the
// series at a given harmonic count.
//
//nolint:revive
type ConvergencePoint struct {
	Harmonics     int     `json:"harmonics"`
	RMSError      float64 `json:"rms_error"`
	MaxError      float64 `json:"max_error"`
	SNR_dB        float64 `json:"snr_db"`
	PowerCaptured float64 `json:"power_captured"`
}

// Convergence evaluates every truncation stage of a progressive
// reconstruction against the original signal. progressive must hold the
// DC stage followed by one stage per harmonic, matching the layout of a
// progressive synthesis; the returned points cover harmonic counts
// 1..len(an).
//
// SNR_dB here is a power ratio, 10*log10(signal power / residual power),
// unlike [Compare] which reports an amplitude ratio. PowerCaptured is the
// percentage of total harmonic power (DC excluded) held by the leading
// harmonics.
func Convergence(original []float64, progressive [][]float64, an, bn []float64) ([]ConvergencePoint, error) {
	if len(original) == 0 {
		return nil, ErrEmptySignal
	}

	if len(an) != len(bn) {
		return nil, fmt.Errorf("%w: got %d and %d", ErrCoefficientLengths, len(an), len(bn))
	}

	if len(progressive) != len(an)+1 {
		return nil, fmt.Errorf("%w: got %d stages, want %d",
			ErrStageCount, len(progressive), len(an)+1)
	}

	for _, stage := range progressive {
		if len(stage) != len(original) {
			return nil, fmt.Errorf("%w: got %d, want %d",
				ErrLengthMismatch, len(stage), len(original))
		}
	}

	signalPower := meanSquare(original)

	var totalPower float64
	for k := range an {
		totalPower += an[k]*an[k] + bn[k]*bn[k]
	}

	points := make([]ConvergencePoint, len(an))
	captured := 0.0

	for h := 1; h <= len(an); h++ {
		stage := progressive[h]

		var sumSq float64

		maxErr := 0.0

		for i := range original {
			d := original[i] - stage[i]
			sumSq += d * d
			maxErr = math.Max(maxErr, math.Abs(d))
		}

		noisePower := sumSq / float64(len(original))
		captured += an[h-1]*an[h-1] + bn[h-1]*bn[h-1]

		points[h-1] = ConvergencePoint{
			Harmonics:     h,
			RMSError:      math.Sqrt(noisePower),
			MaxError:      maxErr,
			SNR_dB:        10 * math.Log10(signalPower/(noisePower+epsilon)),
			PowerCaptured: 100 * captured / (totalPower + epsilon),
		}
	}

	return points, nil
}

// CaptureIndex returns the smallest harmonic count whose cumulative power
// share reaches percent, or 0 when no point does.
func CaptureIndex(points []ConvergencePoint, percent float64) int {
	for _, p := range points {
		if p.PowerCaptured >= percent {
			return p.Harmonics
		}
	}

	return 0
}
