package geopath

import "errors"

var (
	// ErrNilGraph indicates a nil *surfgraph.Graph was passed in.
	ErrNilGraph = errors.New("geopath: graph is nil")

	// ErrNoSeeds indicates an empty seed slice, which cannot seed any
	// shortest-path search.
	ErrNoSeeds = errors.New("geopath: seed set is empty")

	// ErrSeedOutOfRange indicates a seed index outside [0, NumVertices()).
	ErrSeedOutOfRange = errors.New("geopath: seed index out of range")
)
