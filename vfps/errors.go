package vfps

import "errors"

var (
	// ErrNilGraph indicates a nil *surfgraph.Graph was passed in.
	ErrNilGraph = errors.New("vfps: graph is nil")

	// ErrInvalidN indicates a target sample size N <= 0.
	ErrInvalidN = errors.New("vfps: N must be positive")

	// ErrEmptyGraph indicates a graph with zero vertices.
	ErrEmptyGraph = errors.New("vfps: graph has no vertices")

	// ErrSeedOutOfRange indicates an explicit WithInitialSeed value is not
	// a valid vertex index of the graph.
	ErrSeedOutOfRange = errors.New("vfps: initial seed out of range")
)
