package mesh

import (
	"fmt"
	"math"
)

// Triangle is a triple of indices into a Mesh's Points, in [0, len(Points)).
type Triangle [3]int32

// Mesh is an ordered point array and an ordered triangle array. Point
// indices are stable identifiers used throughout the core: every other
// package (surfgraph, vfps, dualmesh, baryweight) refers to original
// vertices by their position in Points.
//
// Mesh is immutable after construction; New owns fresh copies of both
// slices.
type Mesh struct {
	Points    [][3]float64
	Triangles []Triangle
}

// NumPoints returns len(Points).
func (m *Mesh) NumPoints() int { return len(m.Points) }

// NumTriangles returns len(Triangles).
func (m *Mesh) NumTriangles() int { return len(m.Triangles) }

// New validates points and triangles and returns a Mesh owning defensive
// copies of both. Validation order:
//  1. points non-empty (ErrNoPoints).
//  2. triangles non-empty (ErrNoTriangles).
//  3. every triangle index in [0, len(points)) (ErrIndexOutOfRange).
//  4. every triangle has three distinct indices (ErrDegenerateTriangle).
//
// Complexity: O(len(points) + len(triangles)).
func New(points [][3]float64, triangles []Triangle) (*Mesh, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if len(triangles) == 0 {
		return nil, ErrNoTriangles
	}

	n := int32(len(points))
	for i, t := range triangles {
		for _, idx := range t {
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("%w: triangle %d references %d, have %d points", ErrIndexOutOfRange, i, idx, n)
			}
		}
		if t[0] == t[1] || t[1] == t[2] || t[0] == t[2] {
			return nil, fmt.Errorf("%w: triangle %d = %v", ErrDegenerateTriangle, i, t)
		}
	}

	ptsCopy := make([][3]float64, len(points))
	copy(ptsCopy, points)
	triCopy := make([]Triangle, len(triangles))
	copy(triCopy, triangles)

	return &Mesh{Points: ptsCopy, Triangles: triCopy}, nil
}

// Dist is the Euclidean distance between points a and b.
func Dist(a, b [3]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
