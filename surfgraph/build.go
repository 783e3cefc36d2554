package surfgraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/geomesh/mesh"
)

// edgePair is an ordered (from, to) directed half of an undirected edge,
// used only while normalizing the three construction sources into one CSR
// representation.
type edgePair struct {
	from, to int32
}

// BuildFromTriangles constructs a Graph from an already-validated mesh: for
// each triangle (a,b,c), it inserts the three undirected edges {a,b},
// {b,c}, {c,a}. This is the primary constructor.
//
// Complexity: O(F log F) for the sort/dedup pass, where F = len(triangles).
func BuildFromTriangles(m *mesh.Mesh, opts ...GraphOption) (*Graph, error) {
	pairs := make([]edgePair, 0, 3*len(m.Triangles))
	for _, t := range m.Triangles {
		pairs = appendUndirected(pairs, t[0], t[1])
		pairs = appendUndirected(pairs, t[1], t[2])
		pairs = appendUndirected(pairs, t[2], t[0])
	}
	return buildCSR(m.Points, pairs, opts...)
}

// BuildFromEdgeList constructs a Graph from an explicit, possibly
// duplicated, edge list. Every edge is inserted in both orientations;
// duplicates (including edges given more than once, or in swapped order)
// are removed during normalization.
func BuildFromEdgeList(points [][3]float64, edges [][2]int32, opts ...GraphOption) (*Graph, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	pairs := make([]edgePair, 0, 2*len(edges))
	n := int32(len(points))
	for _, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, fmt.Errorf("%w: edge %v, have %d points", ErrIndexOutOfRange, e, n)
		}
		if e[0] == e[1] {
			return nil, fmt.Errorf("%w: vertex %d", ErrSelfLoop, e[0])
		}
		pairs = appendUndirected(pairs, e[0], e[1])
	}
	return buildCSR(points, pairs, opts...)
}

// BuildFromEdgeSet constructs a Graph from a set of edges (each unordered
// pair is already duplicate-free by construction of the set); it is
// otherwise identical to BuildFromEdgeList.
func BuildFromEdgeSet(points [][3]float64, edgeSet map[[2]int32]struct{}, opts ...GraphOption) (*Graph, error) {
	edges := make([][2]int32, 0, len(edgeSet))
	for e := range edgeSet {
		edges = append(edges, e)
	}
	return BuildFromEdgeList(points, edges, opts...)
}

// appendUndirected appends both directed halves (a->b, b->a) of the
// undirected edge {a,b} to pairs, unless a==b.
func appendUndirected(pairs []edgePair, a, b int32) []edgePair {
	if a == b {
		return pairs
	}
	return append(pairs, edgePair{a, b}, edgePair{b, a})
}

// buildCSR sorts pairs lexicographically by (from, to), removes duplicate
// directed pairs, and streams the result into off/nbr/wt in order of
// first endpoint.
func buildCSR(points [][3]float64, pairs []edgePair, opts ...GraphOption) (*Graph, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	cfg := defaultGraphOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].from != pairs[j].from {
			return pairs[i].from < pairs[j].from
		}
		return pairs[i].to < pairs[j].to
	})

	// Deduplicate adjacent equal pairs.
	deduped := pairs[:0]
	for i, p := range pairs {
		if i == 0 || p != deduped[len(deduped)-1] {
			deduped = append(deduped, p)
		}
	}

	n := len(points)
	ptsCopy := make([][3]float64, n)
	copy(ptsCopy, points)

	off := make([]int32, n+1)
	nbr := make([]int32, len(deduped))
	wt := make([]float64, len(deduped))

	for _, p := range deduped {
		off[p.from+1]++
	}
	for i := 0; i < n; i++ {
		off[i+1] += off[i]
	}

	// cursor[i] tracks the next free slot for vertex i's bucket while
	// streaming deduped (already sorted by from, so this is a simple
	// linear fill, but a cursor keeps the code robust if that changes).
	cursor := make([]int32, n)
	copy(cursor, off[:n])
	for _, p := range deduped {
		slot := cursor[p.from]
		nbr[slot] = p.to
		wt[slot] = cfg.WeightFunc(ptsCopy[p.from], ptsCopy[p.to])
		cursor[p.from]++
	}

	return &Graph{points: ptsCopy, off: off, nbr: nbr, wt: wt}, nil
}
