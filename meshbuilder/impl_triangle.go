package meshbuilder

import "github.com/katalvlaran/geomesh/mesh"

// SingleTriangle returns the canonical right triangle (0,0,0)-(1,0,0)-
// (0,1,0).
func SingleTriangle() ([][3]float64, []mesh.Triangle) {
	points := [][3]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}
	triangles := []mesh.Triangle{{0, 1, 2}}
	return points, triangles
}
