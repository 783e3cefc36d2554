package geopath

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/geomesh/surfgraph"
)

// heapItem is a (vertex, distance, rank) triple ordered in the priority
// queue by ascending distance, then ascending rank, then ascending vertex
// index. The secondary keys make pop order fully deterministic even among
// equidistant, equal-rank-candidate entries, independent of push order.
type heapItem struct {
	vertex int32
	dist   float64
	rank   int32
}

type nodePQ []heapItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	if pq[i].rank != pq[j].rank {
		return pq[i].rank < pq[j].rank
	}
	return pq[i].vertex < pq[j].vertex
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) {
	*pq = append(*pq, x.(heapItem))
}
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// MultiSource computes, for every vertex of g, the distance to its
// nearest seed and that seed's rank (its index in seeds). Unreachable
// vertices get dist=+Inf and nearest=-1.
//
// Complexity: O((V+E) log V).
func MultiSource(g *surfgraph.Graph, seeds []int32, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if len(seeds) == 0 {
		return Result{}, ErrNoSeeds
	}
	n := int32(g.NumVertices())
	for _, s := range seeds {
		if s < 0 || s >= n {
			return Result{}, ErrSeedOutOfRange
		}
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist := make([]float64, n)
	nearest := make([]int32, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		nearest[i] = -1
	}

	pq := make(nodePQ, 0, n)
	for rank, s := range seeds {
		dist[s] = 0
		nearest[s] = int32(rank)
		pq = append(pq, heapItem{vertex: s, dist: 0, rank: int32(rank)})
	}
	heap.Init(&pq)

	run(g, dist, nearest, &pq, cfg.MaxDistance)

	return Result{Dist: dist, Nearest: nearest}, nil
}

// UpdateWithSeed performs a bounded, incremental partition update: it
// seeds the search only from newSeed at distance zero with the given
// rank, and relaxes outward,
// overwriting dist/nearest in place wherever the new seed strictly
// improves (or, on an exact tie, has a lower rank than) the existing
// assignment. Vertices already closer to some other seed are left
// untouched, so cost is proportional to the size of the region that
// actually changes, not to the whole graph.
//
// dist and nearest are mutated in place; newSeed's own entries are set to
// (0, rank) unconditionally.
func UpdateWithSeed(g *surfgraph.Graph, dist []float64, nearest []int32, newSeed, rank int32) {
	dist[newSeed] = 0
	nearest[newSeed] = rank

	pq := make(nodePQ, 0, 1)
	pq = append(pq, heapItem{vertex: newSeed, dist: 0, rank: rank})
	heap.Init(&pq)

	run(g, dist, nearest, &pq, math.MaxFloat64)
}

// run is the shared relaxation loop used by MultiSource and
// UpdateWithSeed: a lazy-decrease-key Dijkstra that treats the current
// contents of dist/nearest as the bound to beat, rather than assuming they
// start at +Inf.
func run(g *surfgraph.Graph, dist []float64, nearest []int32, pq *nodePQ, maxDist float64) {
	for pq.Len() > 0 {
		item := heap.Pop(pq).(heapItem)
		v, d, rank := item.vertex, item.dist, item.rank

		// Stale entry: a better (or equally good, lower-rank) assignment
		// for v was already finalized.
		if d > dist[v] || (d == dist[v] && rank > nearest[v]) {
			continue
		}
		if d > maxDist {
			continue
		}

		neighbors, weights := g.Edges(v)
		for i, u := range neighbors {
			w := weights[i]
			newDist := d + w
			if newDist > maxDist {
				continue
			}
			switch {
			case newDist < dist[u]:
				dist[u] = newDist
				nearest[u] = rank
				heap.Push(pq, heapItem{vertex: u, dist: newDist, rank: rank})
			case newDist == dist[u] && rank < nearest[u]:
				// Exact tie: prefer the lower-rank seed even though distance
				// did not improve; re-push so the tie-break propagates outward.
				nearest[u] = rank
				heap.Push(pq, heapItem{vertex: u, dist: newDist, rank: rank})
			}
		}
	}
}
