package dualmesh

import (
	"github.com/katalvlaran/geomesh/mesh"
	"github.com/katalvlaran/geomesh/surfgraph"
)

// dualKey is the sorted, duplicate-free identity of a dual triangle: the
// three seed ranks that define it, in ascending order. Two input
// triangles that happen to straddle the same three Voronoi cells collapse
// onto the same dualKey and only the first emits a low-resolution
// triangle: each unordered triple is emitted at most once.
type dualKey [3]int32

func sortedKey(a, b, c int32) dualKey {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return dualKey{a, b, c}
}

// Build constructs the low-resolution vertices and triangles from a
// Voronoi partition.
//
// Vertices: lowPoints[k] = g.Point(seeds[k]) for k in [0, len(seeds)).
//
// Triangles: for each input triangle (a,b,c), the triple
// (nearest[a], nearest[b], nearest[c]) is examined; a low-resolution
// triangle is emitted iff the three values are pairwise distinct and all
// non-negative, and iff its unordered identity has not already been
// emitted by an earlier input triangle. The emitted triangle's winding
// order is then checked against its originating input triangle's normal
// and flipped if they disagree (see Reorient).
//
// Complexity: O(F) where F = len(triangles).
func Build(g *surfgraph.Graph, seeds []int32, nearest []int32, triangles []mesh.Triangle) ([][3]float64, []mesh.Triangle, Stats) {
	lowPoints := make([][3]float64, len(seeds))
	for k, s := range seeds {
		lowPoints[k] = g.Point(s)
	}

	seen := make(map[dualKey]struct{}, len(triangles))
	lowTriangles := make([]mesh.Triangle, 0, len(triangles))
	origins := make([]mesh.Triangle, 0, len(triangles))

	numSeeds := int32(len(seeds))
	for _, t := range triangles {
		na, nb, nc := nearest[t[0]], nearest[t[1]], nearest[t[2]]
		if na < 0 || nb < 0 || nc < 0 {
			continue
		}
		if na >= numSeeds || nb >= numSeeds || nc >= numSeeds {
			panic(ErrSeedCountMismatch)
		}
		if na == nb || nb == nc || na == nc {
			continue
		}

		key := sortedKey(na, nb, nc)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		lowTriangles = append(lowTriangles, mesh.Triangle{na, nb, nc})
		origins = append(origins, t)
	}

	Reorient(lowPoints, lowTriangles, g.Points(), origins)

	return lowPoints, lowTriangles, Stats{
		NumVertices:  len(lowPoints),
		NumTriangles: len(lowTriangles),
		Degenerate:   len(lowTriangles) == 0,
	}
}
