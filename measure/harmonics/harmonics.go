// Package harmonics breaks trigonometric series coefficients down into
// per-harmonic magnitude, phase, and power content.
package harmonics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

const (
	// epsilon guards divisions against a vanishing reference power.
	epsilon = 1e-12

	// maxDominant caps how many leading harmonics Analyze reports.
	maxDominant = 5
)

// ErrCoefficientLengths is returned when an and bn disagree in length.
var ErrCoefficientLengths = errors.New("harmonics: an and bn must have the same length")

// Analysis holds the per-harmonic breakdown of a coefficient set.
// Slices are indexed by harmonic number minus one. Dominant holds
// 1-based harmonic numbers.
//
//nolint:revive
type Analysis struct {
	Magnitude        []float64 `json:"magnitude"`
	Phase            []float64 `json:"phase"`
	Power            []float64 `json:"power"`
	TotalPower       float64   `json:"total_power"`
	PowerPercentage  []float64 `json:"power_percentage"`
	Dominant         []int     `json:"dominant_harmonics"`
	FundamentalPower float64   `json:"fundamental_power"`
	THD              float64   `json:"thd"`
}

// Analyze computes magnitude sqrt(an^2+bn^2), phase atan2(bn, an), and
// power per harmonic, the share each harmonic holds of the total power,
// the dominant harmonics by magnitude, and the total harmonic distortion
// relative to the fundamental. THD is a percentage; an empty coefficient
// set yields zero totals and an empty breakdown.
func Analyze(an, bn []float64) (Analysis, error) {
	if len(an) != len(bn) {
		return Analysis{}, fmt.Errorf("%w: got %d and %d",
			ErrCoefficientLengths, len(an), len(bn))
	}

	n := len(an)

	a := Analysis{
		Magnitude:       make([]float64, n),
		Phase:           make([]float64, n),
		Power:           make([]float64, n),
		PowerPercentage: make([]float64, n),
		Dominant:        make([]int, 0, maxDominant),
	}

	if n == 0 {
		return a, nil
	}

	vecmath.Magnitude(a.Magnitude, an, bn)
	vecmath.Power(a.Power, an, bn)

	for k := range a.Phase {
		a.Phase[k] = math.Atan2(bn[k], an[k])
	}

	for _, p := range a.Power {
		a.TotalPower += p
	}

	for k, p := range a.Power {
		a.PowerPercentage[k] = 100 * p / (a.TotalPower + epsilon)
	}

	a.Dominant = dominant(a.Magnitude)
	a.FundamentalPower = a.Power[0]

	var overtonePower float64
	for _, p := range a.Power[1:] {
		overtonePower += p
	}

	a.THD = 100 * math.Sqrt(overtonePower/(a.Power[0]+epsilon))

	return a, nil
}

// dominant returns up to maxDominant 1-based harmonic numbers ordered by
// descending magnitude. Ties keep the lower harmonic first.
func dominant(magnitude []float64) []int {
	idx := make([]int, len(magnitude))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(i, j int) bool {
		return magnitude[idx[i]] > magnitude[idx[j]]
	})

	if len(idx) > maxDominant {
		idx = idx[:maxDominant]
	}

	for i := range idx {
		idx[i]++
	}

	return idx
}
