package baryweight

import "errors"

var (
	// ErrInvalidCount indicates nOrigInput <= 0.
	ErrInvalidCount = errors.New("baryweight: n_orig_input must be positive")

	// ErrTooFewPoints indicates inputPoints has fewer rows than
	// nOrigInput.
	ErrTooFewPoints = errors.New("baryweight: input_points shorter than n_orig_input")

	// ErrNoLowResVertices indicates an empty low_points array, which
	// cannot anchor any barycentric row.
	ErrNoLowResVertices = errors.New("baryweight: low_points is empty")

	// ErrNoFallbackTriangle indicates, under WithStrictFallback, that an
	// input vertex has no partition seed or an empty one-ring and would
	// otherwise have silently fallen back to a 1-hot nearest-vertex row.
	ErrNoFallbackTriangle = errors.New("baryweight: no containing triangle found for input vertex")
)
