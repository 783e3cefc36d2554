package meshbuilder

import "github.com/katalvlaran/geomesh/mesh"

// DisconnectedPair returns two triangles placed far enough apart that
// they share no vertices and no edge connects them: 6 vertices, 2
// triangles, 2 connected components.
func DisconnectedPair() ([][3]float64, []mesh.Triangle) {
	const gap = 10.0
	points := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
		{gap, 0, 0}, {gap + 1, 0, 0}, {gap, 1, 0},
	}
	triangles := []mesh.Triangle{
		{0, 1, 2},
		{3, 4, 5},
	}
	return points, triangles
}

// WithIsolatedVertex appends one point with no incident triangle to an
// existing (points, triangles) pair: a vertex unreachable from every
// seed because it has no edges at all.
func WithIsolatedVertex(points [][3]float64, triangles []mesh.Triangle) ([][3]float64, []mesh.Triangle) {
	isolated := [3]float64{1000, 1000, 1000}
	out := make([][3]float64, len(points), len(points)+1)
	copy(out, points)
	out = append(out, isolated)
	return out, triangles
}
