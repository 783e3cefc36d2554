// Package geomesh turns a dense input triangle mesh into a coarse,
// uniformly-sampled low-resolution mesh and a weight map back onto the
// original vertices.
//
// The pipeline is six operations spread across seven packages:
//
//	mesh/       — validated input mesh value type (points + triangles)
//	surfgraph/  — CSR weighted undirected graph built from a mesh's edges
//	geopath/    — multi-source Dijkstra with deterministic rank tie-breaking
//	vfps/       — Voronoi farthest-point sampling of seed vertices
//	dualmesh/   — low-res mesh reconstruction from the Voronoi partition
//	baryweight/ — barycentric weight map from the low-res mesh back to the input
//	meshbuilder/ — synthetic mesh fixtures used only by tests
//
// Each stage takes the previous stage's output and is independently
// testable.
package geomesh
