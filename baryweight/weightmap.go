package baryweight

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geomesh/mesh"
)

// Options configures a Build run.
type Options struct {
	// StrictFallback, when true, makes Build return ErrNoFallbackTriangle
	// instead of silently emitting a 1-hot Euclidean-nearest row for a
	// vertex with no partition seed or an empty one-ring. Default false.
	StrictFallback bool
}

// Option is a functional option mutating Options.
type Option func(*Options)

// WithStrictFallback rejects input vertices that would otherwise silently
// fall back to a 1-hot nearest-vertex row.
func WithStrictFallback(strict bool) Option {
	return func(o *Options) { o.StrictFallback = strict }
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{StrictFallback: false}
}

// Build derives the barycentric weight map from the Voronoi partition
// and the dual mesh.
//
// For each original vertex i in [0, nOrigInput):
//  1. The low-resolution triangle whose planar span most closely contains
//     (or is closest to) inputPoints[i] is located: starting from the
//     low-resolution vertex k0 = nearest[i], every
//     low-resolution triangle incident to k0 (its "one-ring") is
//     evaluated, and the one with the smallest out-of-plane projection
//     residual is kept.
//  2. The barycentric coordinates of the projection of inputPoints[i]
//     onto that triangle are computed, negative coordinates are clamped
//     to 0, and the result is renormalized to sum to 1.
//  3. The row is stored with at most 3 non-zero entries.
//
// If i has no partition seed, or its one-ring is empty (a vertex whose
// every incident input triangle failed to produce a dual triangle),
// Build falls back to a single entry of 1 at the Euclidean-nearest
// low-resolution vertex.
//
// Complexity: O(nOrigInput * k) where k is the typical one-ring size (a
// small constant); O(nOrigInput * |lowPoints|) in the fallback path.
func Build(inputPoints [][3]float64, lowPoints [][3]float64, lowTriangles []mesh.Triangle, nOrigInput int, nearest []int32, opts ...Option) (*SparseMatrix, error) {
	if nOrigInput <= 0 {
		return nil, ErrInvalidCount
	}
	if len(inputPoints) < nOrigInput {
		return nil, ErrTooFewPoints
	}
	if len(lowPoints) == 0 {
		return nil, ErrNoLowResVertices
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	oneRing := buildOneRing(lowPoints, lowTriangles)

	b := newBuilder(nOrigInput, len(lowPoints))
	for i := 0; i < nOrigInput; i++ {
		p := inputPoints[i]

		var k0 int32 = -1
		if i < len(nearest) && nearest[i] >= 0 {
			k0 = nearest[i]
		}

		cols, vals, ok := bestTriangleRow(p, k0, oneRing, lowPoints, lowTriangles)
		if !ok {
			if cfg.StrictFallback {
				return nil, fmt.Errorf("%w: input vertex %d", ErrNoFallbackTriangle, i)
			}
			nearestLow := euclideanNearest(p, lowPoints)
			cols, vals = []int32{nearestLow}, []float64{1}
		}
		b.addRow(cols, vals)
	}

	return b.build(nOrigInput), nil
}

// buildOneRing maps each low-resolution vertex to the indices (into
// lowTriangles) of every low-resolution triangle incident to it.
func buildOneRing(lowPoints [][3]float64, lowTriangles []mesh.Triangle) [][]int32 {
	oneRing := make([][]int32, len(lowPoints))
	for ti, t := range lowTriangles {
		for _, v := range t {
			oneRing[v] = append(oneRing[v], int32(ti))
		}
	}
	return oneRing
}

// bestTriangleRow walks k0's one-ring (if k0 is defined and has one),
// picks the triangle with smallest projection residual, and returns its
// clamped, renormalized barycentric row. ok is false if k0 is undefined
// or has an empty one-ring, signaling the caller to fall back.
func bestTriangleRow(p [3]float64, k0 int32, oneRing [][]int32, lowPoints [][3]float64, lowTriangles []mesh.Triangle) (cols []int32, vals []float64, ok bool) {
	if k0 < 0 || len(oneRing[k0]) == 0 {
		return nil, nil, false
	}

	bestResidual := math.Inf(1)
	var bestTri mesh.Triangle
	var bestBary [3]float64
	found := false

	for _, ti := range oneRing[k0] {
		t := lowTriangles[ti]
		a, bb, c := lowPoints[t[0]], lowPoints[t[1]], lowPoints[t[2]]
		alpha, beta, gamma, residual, degenerate := barycentricProjection(p, a, bb, c)
		if degenerate {
			continue
		}
		if residual < bestResidual {
			bestResidual = residual
			bestTri = t
			bestBary = [3]float64{alpha, beta, gamma}
			found = true
		}
	}

	if !found {
		return nil, nil, false
	}

	alpha, beta, gamma := clampAndRenormalize(bestBary[0], bestBary[1], bestBary[2])
	cols, vals = compact(bestTri, [3]float64{alpha, beta, gamma})
	return cols, vals, true
}

// barycentricProjection computes the barycentric coordinates of the
// projection of p onto triangle (a,b,c)'s plane, plus the (unsigned)
// out-of-plane residual distance. degenerate is true for a zero-area
// triangle, which cannot host a meaningful projection.
func barycentricProjection(p, a, b, c [3]float64) (alpha, beta, gamma, residual float64, degenerate bool) {
	v0 := sub(b, a)
	v1 := sub(c, a)
	normal := cross(v0, v1)
	normLen := math.Sqrt(dot(normal, normal))
	if normLen < 1e-18 {
		return 0, 0, 0, 0, true
	}
	unitNormal := [3]float64{normal[0] / normLen, normal[1] / normLen, normal[2] / normLen}

	toP := sub(p, a)
	signedDist := dot(toP, unitNormal)
	residual = math.Abs(signedDist)

	projected := [3]float64{
		p[0] - signedDist*unitNormal[0],
		p[1] - signedDist*unitNormal[1],
		p[2] - signedDist*unitNormal[2],
	}

	v2 := sub(projected, a)
	d00 := dot(v0, v0)
	d01 := dot(v0, v1)
	d11 := dot(v1, v1)
	d20 := dot(v2, v0)
	d21 := dot(v2, v1)
	denom := d00*d11 - d01*d01
	if math.Abs(denom) < 1e-18 {
		return 0, 0, 0, 0, true
	}

	beta = (d11*d20 - d01*d21) / denom
	gamma = (d00*d21 - d01*d20) / denom
	alpha = 1 - beta - gamma
	return alpha, beta, gamma, residual, false
}

// clampAndRenormalize clamps negative barycentric coordinates to 0 and
// rescales the result to sum to 1.
func clampAndRenormalize(alpha, beta, gamma float64) (float64, float64, float64) {
	if alpha < 0 {
		alpha = 0
	}
	if beta < 0 {
		beta = 0
	}
	if gamma < 0 {
		gamma = 0
	}
	sum := alpha + beta + gamma
	if sum < 1e-18 {
		return 1, 0, 0
	}
	return alpha / sum, beta / sum, gamma / sum
}

// compact drops zero entries and returns the (col, val) pairs for a
// clamped barycentric row, so zero weights are never stored explicitly.
func compact(t mesh.Triangle, bary [3]float64) (cols []int32, vals []float64) {
	for k := 0; k < 3; k++ {
		if bary[k] > 0 {
			cols = append(cols, t[k])
			vals = append(vals, bary[k])
		}
	}
	return cols, vals
}

// euclideanNearest returns the index of the low-res vertex closest to p
// in Euclidean distance, used as the fallback anchor.
func euclideanNearest(p [3]float64, lowPoints [][3]float64) int32 {
	best := int32(0)
	bestDist := math.Inf(1)
	for i, lp := range lowPoints {
		d := mesh.Dist(p, lp)
		if d < bestDist {
			bestDist = d
			best = int32(i)
		}
	}
	return best
}

func sub(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
