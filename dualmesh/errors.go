package dualmesh

import "errors"

var (
	// ErrSeedCountMismatch indicates len(nearest) entries reference a
	// seed rank outside [0, len(seeds)).
	ErrSeedCountMismatch = errors.New("dualmesh: nearest references a seed rank out of range")

	// ErrLengthMismatch indicates Reorient was called with low_triangles
	// and origin_triangles slices of different lengths.
	ErrLengthMismatch = errors.New("dualmesh: low_triangles and origin_triangles length mismatch")
)
