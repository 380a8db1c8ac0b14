package embed

import "errors"

// Configuration errors. These fail fast before any estimator or embedder
// runs; numeric degeneracies inside the algorithms degrade to defined
// fallback values instead.
var (
	// ErrDelayBounds indicates a non-positive embedding delay.
	ErrDelayBounds = errors.New("embed: delay must be >= 1")

	// ErrDimensionBounds indicates a non-positive embedding dimension.
	ErrDimensionBounds = errors.New("embed: dimension must be >= 1")

	// ErrSeriesTooShort indicates m*tau >= len(series), leaving no valid
	// embedded row.
	ErrSeriesTooShort = errors.New("embed: series too short for dimension*delay")

	// ErrLagBounds indicates a delay search range that exceeds the series.
	ErrLagBounds = errors.New("embed: max lag must be in [2, len(series))")

	// ErrDimBounds indicates a dimension search range below 2 candidates.
	ErrDimBounds = errors.New("embed: max dimension must be >= 2")
)

// Params holds a validated embedding parameter pair.
type Params struct {
	Tau int // embedding delay
	Dim int // embedding dimension
}

// Validate checks the parameter pair against a series of length n.
func (p Params) Validate(n int) error {
	if p.Tau < 1 {
		return ErrDelayBounds
	}
	if p.Dim < 1 {
		return ErrDimensionBounds
	}
	if p.Dim*p.Tau >= n {
		return ErrSeriesTooShort
	}
	return nil
}
