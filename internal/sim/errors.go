package sim

import "errors"

// Sentinel errors returned by the simulation core. Callers match them
// with errors.Is; every failure is recoverable at the boundary.
var (
	// ErrInvalidDimensions is returned when a grid is created or resized
	// with non-positive rows or columns.
	ErrInvalidDimensions = errors.New("sim: invalid grid dimensions")

	// ErrInvalidParameter is returned when a probability falls outside
	// [0,1]. Values are rejected, never silently clamped.
	ErrInvalidParameter = errors.New("sim: parameter outside [0,1]")

	// ErrMalformedEncoding is returned when an RLE string cannot be
	// parsed or its total run length does not match the target shape.
	ErrMalformedEncoding = errors.New("sim: malformed run-length encoding")

	// ErrPatternOutOfBounds is returned when a pattern does not fit the
	// grid after centering. Patterns are rejected, not clipped.
	ErrPatternOutOfBounds = errors.New("sim: pattern exceeds grid bounds")

	// ErrUnsupportedModel is returned for operations that only apply to
	// one model, such as pattern insertion outside of Life.
	ErrUnsupportedModel = errors.New("sim: operation not supported by model")

	// ErrUnknownPattern is returned when a pattern name is not in the
	// catalogue.
	ErrUnknownPattern = errors.New("sim: unknown pattern")
)
