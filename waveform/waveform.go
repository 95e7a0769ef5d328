package waveform

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fourier/series"
)

// Errors returned by waveform functions.
var (
	ErrUnknownType      = errors.New("waveform: unknown waveform type")
	ErrInvalidAmplitude = errors.New("waveform: amplitude must be finite")
	ErrInvalidPeriod    = errors.New("waveform: period must be positive and finite")
	ErrInvalidDuty      = errors.New("waveform: duty cycle must be in (0, 1)")
)

// Type identifies a predefined periodic waveform.
type Type int

const (
	TypeSquare Type = iota
	TypeSawtooth
	TypeTriangle
	TypeHalfWave
	TypePulseTrain
)

// Metadata describes a waveform for catalogs and display layers.
type Metadata struct {
	Name        string
	Formula     string
	Description string
}

var metadataByType = map[Type]Metadata{
	TypeSquare: {
		Name:        "Square Wave",
		Formula:     "A if (t%T) < T/2 else -A",
		Description: "Classic square wave with odd harmonics only",
	},
	TypeSawtooth: {
		Name:        "Sawtooth Wave",
		Formula:     "2A((t%T)/T) - A",
		Description: "Linear ramp with all harmonics",
	},
	TypeTriangle: {
		Name:        "Triangle Wave",
		Formula:     "2A|2((t%T)/T - 0.5)| - A",
		Description: "Triangle wave with odd harmonics only",
	},
	TypeHalfWave: {
		Name:        "Half-Wave Rectified Sine",
		Formula:     "max(0, A*sin(2πt/T))",
		Description: "Rectified sine wave with DC component",
	},
	TypePulseTrain: {
		Name:        "Pulse Train",
		Formula:     "A if (t%T) < duty*T else 0",
		Description: "Periodic pulses with adjustable duty cycle",
	},
}

// String returns the catalog key of the waveform type.
func (t Type) String() string {
	switch t {
	case TypeSquare:
		return "square"
	case TypeSawtooth:
		return "sawtooth"
	case TypeTriangle:
		return "triangle"
	case TypeHalfWave:
		return "half_wave"
	case TypePulseTrain:
		return "pulse_train"
	default:
		return "unknown"
	}
}

// ParseType resolves a catalog key such as "square" or "pulse_train".
func ParseType(name string) (Type, error) {
	for _, t := range Types() {
		if t.String() == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Info returns static metadata for a waveform type. Unknown types yield a
// zero Metadata.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// Types returns all predefined waveform types in catalog order.
func Types() []Type {
	return []Type{TypeSquare, TypeSawtooth, TypeTriangle, TypeHalfWave, TypePulseTrain}
}

const (
	defaultAmplitude = 1.0
	defaultDuty      = 0.2
)

type config struct {
	amplitude float64
	period    float64
	duty      float64
}

func defaultConfig() config {
	return config{
		amplitude: defaultAmplitude,
		period:    2 * math.Pi,
		duty:      defaultDuty,
	}
}

func (c config) validate() error {
	if math.IsNaN(c.amplitude) || math.IsInf(c.amplitude, 0) {
		return fmt.Errorf("%w: %f", ErrInvalidAmplitude, c.amplitude)
	}

	if c.period <= 0 || math.IsNaN(c.period) || math.IsInf(c.period, 0) {
		return fmt.Errorf("%w: %f", ErrInvalidPeriod, c.period)
	}

	if !(c.duty > 0 && c.duty < 1) {
		return fmt.Errorf("%w: %f", ErrInvalidDuty, c.duty)
	}

	return nil
}

// Option configures waveform generation.
type Option func(*config)

// WithAmplitude sets the peak amplitude A. The default is 1.
func WithAmplitude(a float64) Option {
	return func(c *config) {
		c.amplitude = a
	}
}

// WithPeriod sets the waveform period T. The default is 2π.
func WithPeriod(t float64) Option {
	return func(c *config) {
		c.period = t
	}
}

// WithDuty sets the pulse-train duty cycle, the fraction of each period
// spent high. Only the pulse train reads it. The default is 0.2.
func WithDuty(d float64) Option {
	return func(c *config) {
		c.duty = d
	}
}

// New returns a generator for the given waveform type. The generator
// satisfies the series.Func contract: it maps a time grid to exactly one
// sample per time value and never fails once constructed.
func New(typ Type, opts ...Option) (series.Func, error) {
	if _, ok := metadataByType[typ]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(typ))
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	sample := kernelFor(typ, cfg)

	return func(t []float64) ([]float64, error) {
		out := make([]float64, len(t))
		for i, ti := range t {
			out[i] = sample(ti)
		}

		return out, nil
	}, nil
}

func kernelFor(typ Type, cfg config) func(float64) float64 {
	amp := cfg.amplitude
	period := cfg.period

	switch typ {
	case TypeSquare:
		return func(t float64) float64 {
			if wrap(t, period) < period/2 {
				return amp
			}

			return -amp
		}
	case TypeSawtooth:
		return func(t float64) float64 {
			return amp * (2*wrap(t, period)/period - 1)
		}
	case TypeTriangle:
		return func(t float64) float64 {
			return amp * (2*math.Abs(2*(wrap(t, period)/period-0.5)) - 1)
		}
	case TypeHalfWave:
		omega0 := 2 * math.Pi / period

		return func(t float64) float64 {
			return math.Max(0, amp*math.Sin(omega0*t))
		}
	case TypePulseTrain:
		high := cfg.duty * period

		return func(t float64) float64 {
			if wrap(t, period) < high {
				return amp
			}

			return 0
		}
	default:
		return func(float64) float64 { return 0 }
	}
}

// wrap reduces t into [0, period), staying non-negative for negative times
// where math.Mod would keep the sign of the dividend.
func wrap(t, period float64) float64 {
	m := math.Mod(t, period)
	if m < 0 {
		m += period
	}

	return m
}
