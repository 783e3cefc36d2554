package meshbuilder

import "github.com/katalvlaran/geomesh/mesh"

// Tetrahedron returns the regular tetrahedron on vertices 0..3 (complete
// graph K4 under surfgraph's edge extraction), one triangle per face, all
// outward-wound.
func Tetrahedron() ([][3]float64, []mesh.Triangle) {
	points := [][3]float64{
		{1, 1, 1},
		{1, -1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
	}
	triangles := []mesh.Triangle{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}
	return points, triangles
}
