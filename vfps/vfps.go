package vfps

import (
	"math"

	"github.com/katalvlaran/geomesh/geopath"
	"github.com/katalvlaran/geomesh/surfgraph"
)

// Sample grows a seed set of target size n by repeated farthest-point
// promotion:
//
//  1. The initial seed is vertex 0 of the largest connected component (or
//     simply vertex 0 when the graph has a single component), unless
//     WithInitialSeed overrides it; a single-source search from the
//     chosen seed initializes Dist/Nearest.
//  2. While the seed set has fewer than n members, the vertex farthest
//     from the current set (ties broken by lowest index) is appended as
//     the next seed, and the partition is updated incrementally via
//     geopath.UpdateWithSeed. Sampling stops early if the farthest
//     remaining vertex is already at distance zero (every vertex is
//     already a seed): no further distinct candidates exist.
//
// Complexity: O((V+E) log V) total, amortized across all incremental
// updates.
func Sample(g *surfgraph.Graph, n int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if n <= 0 {
		return Result{}, ErrInvalidN
	}
	total := g.NumVertices()
	if total == 0 {
		return Result{}, ErrEmptyGraph
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	v0 := cfg.InitialSeed
	if v0 < 0 {
		label, _ := g.LargestComponent()
		labels := g.ConnectedComponents()
		v0 = g.FirstVertexInComponent(labels, label)
	} else if int(v0) >= total {
		return Result{}, ErrSeedOutOfRange
	}

	seeds := make([]int32, 0, n)
	seeds = append(seeds, v0)

	initRes, err := geopath.MultiSource(g, seeds)
	if err != nil {
		return Result{}, err
	}
	dist, nearest := initRes.Dist, initRes.Nearest

	stoppedEarly := false
	for len(seeds) < n {
		candidate, candidateDist := argmax(dist)
		if candidateDist == 0 {
			stoppedEarly = true
			break
		}

		rank := int32(len(seeds))
		seeds = append(seeds, candidate)
		geopath.UpdateWithSeed(g, dist, nearest, candidate, rank)
	}

	return Result{
		Seeds:        seeds,
		Nearest:      nearest,
		Dist:         dist,
		Radius:       radiusOf(dist),
		StoppedEarly: stoppedEarly,
	}, nil
}

// argmax returns the index of the largest value in dist (ties broken by
// lowest index) and that value. +Inf (unreachable) vertices are the
// largest possible value, so they are promoted to seeds before any
// reachable vertex runs out — every disconnected component gets its own
// seed before sampling reconsiders any already-covered component.
func argmax(dist []float64) (int32, float64) {
	best := int32(0)
	bestVal := dist[0]
	for i := 1; i < len(dist); i++ {
		if dist[i] > bestVal {
			bestVal = dist[i]
			best = int32(i)
		}
	}
	return best, bestVal
}

// radiusOf returns the maximum finite entry of dist, or 0 if no finite
// entry is positive (e.g. the graph has a single vertex).
func radiusOf(dist []float64) float64 {
	r := 0.0
	for _, d := range dist {
		if !math.IsInf(d, 1) && d > r {
			r = d
		}
	}
	return r
}
