package series

import "errors"

// Errors returned by series functions.
var (
	ErrInvalidPeriod      = errors.New("series: period must be positive and finite")
	ErrInvalidPoints      = errors.New("series: sample count must be >= 2")
	ErrInvalidHarmonics   = errors.New("series: harmonic count must be >= 0")
	ErrNilFunction        = errors.New("series: periodic function must not be nil")
	ErrSampleLength       = errors.New("series: periodic function returned wrong sample count")
	ErrCoefficientLengths = errors.New("series: an and bn must have the same length")
)
