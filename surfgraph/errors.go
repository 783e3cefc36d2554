package surfgraph

import "errors"

// Sentinel errors for surfgraph construction and queries. All are contract
// violations: callers should check with errors.Is.
var (
	// ErrNoPoints indicates an empty point array.
	ErrNoPoints = errors.New("surfgraph: point array is empty")

	// ErrIndexOutOfRange indicates an edge or triangle references a point
	// index outside [0, len(points)).
	ErrIndexOutOfRange = errors.New("surfgraph: vertex index out of range")

	// ErrSelfLoop indicates an edge whose two endpoints are equal; the
	// surface graph never carries self-loops.
	ErrSelfLoop = errors.New("surfgraph: self-loop is not allowed")

	// ErrNeighborOutOfRange is the value Neighbor panics with when given a
	// rank outside [0, Degree(v)).
	ErrNeighborOutOfRange = errors.New("surfgraph: neighbor rank out of range")
)
