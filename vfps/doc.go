// Package vfps implements Voronoi farthest-point sampling: incrementally
// growing a seed set of a target size by repeatedly promoting the
// farthest vertex from the current set, while maintaining the resulting
// Voronoi partition (nearest-seed label and geodesic distance) as a
// byproduct.
//
// The partition is initialized with a single-source search from a
// deterministic starting vertex, then updated incrementally — via
// geopath.UpdateWithSeed — each time a new seed is promoted, rather than
// rerun from scratch.
package vfps
