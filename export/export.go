// Package export assembles complete analysis snapshots and serializes
// them to JSON.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cwbudde/algo-fourier/measure/fidelity"
	"github.com/cwbudde/algo-fourier/measure/harmonics"
	"github.com/cwbudde/algo-fourier/series"
)

// CoefficientData is the coefficient block of an exported record.
type CoefficientData struct {
	A0 float64   `json:"a0"`
	An []float64 `json:"an"`
	Bn []float64 `json:"bn"`
}

// Record bundles one full analysis run: the sampled signals, the series
// coefficients, the harmonic breakdown, and the reconstruction metrics.
type Record struct {
	Time                []float64          `json:"time"`
	OriginalSignal      []float64          `json:"original_signal"`
	ReconstructedSignal []float64          `json:"reconstructed_signal"`
	Coefficients        CoefficientData    `json:"coefficients"`
	Analysis            harmonics.Analysis `json:"analysis"`
	Metrics             fidelity.Result    `json:"metrics"`
}

// Build assembles a Record from already-computed parts.
func Build(t, original, reconstructed []float64, c series.Coefficients,
	a harmonics.Analysis, m fidelity.Result,
) Record {
	return Record{
		Time:                t,
		OriginalSignal:      original,
		ReconstructedSignal: reconstructed,
		Coefficients:        CoefficientData{A0: c.A0, An: c.An, Bn: c.Bn},
		Analysis:            a,
		Metrics:             m,
	}
}

// Option configures Analyze.
type Option func(*config)

type config struct {
	points int
}

// WithPoints overrides the sampling grid resolution.
func WithPoints(n int) Option {
	return func(c *config) { c.points = n }
}

// Analyze runs the full pipeline on fn over one period: coefficient
// extraction, reconstruction from all harmonics, harmonic content
// analysis, and fidelity metrics against the sampled original.
func Analyze(fn series.Func, period float64, harmonicCount int, opts ...Option) (Record, error) {
	var cfg config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var seriesOpts []series.Option
	if cfg.points > 0 {
		seriesOpts = append(seriesOpts, series.WithPoints(cfg.points))
	}

	ana, err := series.NewAnalyzer(period, seriesOpts...)
	if err != nil {
		return Record{}, err
	}

	c, err := ana.Coefficients(fn, harmonicCount)
	if err != nil {
		return Record{}, err
	}

	t, original, err := ana.Sample(fn)
	if err != nil {
		return Record{}, err
	}

	reconstructed, err := ana.Reconstruct(c, t)
	if err != nil {
		return Record{}, err
	}

	analysis, err := harmonics.Analyze(c.An, c.Bn)
	if err != nil {
		return Record{}, err
	}

	metrics, err := fidelity.Compare(original, reconstructed)
	if err != nil {
		return Record{}, err
	}

	return Build(t, original, reconstructed, c, analysis, metrics), nil
}

// WriteJSON writes the record as indented JSON. Encoding fails when a
// metric degenerated to an infinity, which JSON cannot represent.
func (r *Record) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("export: encode record: %w", err)
	}

	return nil
}
