package surfgraph

import "github.com/katalvlaran/geomesh/mesh"

// GraphOptions configures how a Graph's construction weighs edges.
type GraphOptions struct {
	// WeightFunc computes the weight of an edge from its two endpoint
	// coordinates. Default mesh.Dist (Euclidean distance).
	WeightFunc func(a, b [3]float64) float64
}

// GraphOption is a functional option mutating GraphOptions.
type GraphOption func(*GraphOptions)

// WithWeightFunc overrides the default Euclidean edge-weight function,
// for callers that want, e.g., a geodesic or anisotropic edge cost
// instead of straight-line distance.
func WithWeightFunc(f func(a, b [3]float64) float64) GraphOption {
	return func(o *GraphOptions) { o.WeightFunc = f }
}

// defaultGraphOptions returns the zero-configuration GraphOptions.
func defaultGraphOptions() GraphOptions {
	return GraphOptions{WeightFunc: mesh.Dist}
}

// Graph is a weighted, undirected surface graph in CSR-like storage.
//
// off has length NumVertices()+1; vertex i's neighbors occupy
// nbr[off[i]:off[i+1]] and carry parallel weights wt[off[i]:off[i+1]].
// points is a defensive copy made at construction time: mutating the
// caller's original array afterward does not affect the Graph.
type Graph struct {
	points [][3]float64
	off    []int32
	nbr    []int32
	wt     []float64
}

// NumVertices returns the number of vertices in the graph.
func (g *Graph) NumVertices() int { return len(g.points) }

// NumEdges returns the number of undirected edges (= len(flat neighbor
// array) / 2).
func (g *Graph) NumEdges() int { return len(g.nbr) / 2 }

// Degree returns the number of neighbors of vertex v.
func (g *Graph) Degree(v int32) int32 {
	return g.off[v+1] - g.off[v]
}

// Point returns the stored coordinates of vertex v.
func (g *Graph) Point(v int32) [3]float64 {
	return g.points[v]
}

// Points returns a read-only view of every vertex's stored coordinates,
// indexed the same way as Point. Callers must not mutate the returned
// slice.
func (g *Graph) Points() [][3]float64 {
	return g.points
}

// Neighbor returns the k-th neighbor of vertex v and the weight of the
// edge to it, where k is in [0, Degree(v)). Panics if k is out of range:
// an internal invariant violation, not a caller-recoverable condition in
// the hot path.
func (g *Graph) Neighbor(v, k int32) (neighbor int32, weight float64) {
	idx := g.off[v] + k
	if k < 0 || idx >= g.off[v+1] {
		panic(ErrNeighborOutOfRange)
	}
	return g.nbr[idx], g.wt[idx]
}

// Edges returns, for vertex v, its neighbor indices and parallel edge
// weights as slices (read-only views into the graph's CSR storage).
func (g *Graph) Edges(v int32) (neighbors []int32, weights []float64) {
	lo, hi := g.off[v], g.off[v+1]
	return g.nbr[lo:hi], g.wt[lo:hi]
}
