package mesh

import "errors"

// Sentinel errors returned by New for malformed input. All are contract
// violations (caller's responsibility): they are returned before any
// allocation of the returned Mesh is handed back.
var (
	// ErrNoPoints indicates an empty point array.
	ErrNoPoints = errors.New("mesh: point array is empty")

	// ErrNoTriangles indicates an empty triangle array.
	ErrNoTriangles = errors.New("mesh: triangle array is empty")

	// ErrIndexOutOfRange indicates a triangle references a point index
	// outside [0, len(points)).
	ErrIndexOutOfRange = errors.New("mesh: triangle index out of range")

	// ErrDegenerateTriangle indicates a triangle has two equal vertex
	// indices (not a triple of distinct vertices).
	ErrDegenerateTriangle = errors.New("mesh: triangle has repeated vertex index")
)
