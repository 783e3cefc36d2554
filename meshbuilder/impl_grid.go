package meshbuilder

import "github.com/katalvlaran/geomesh/mesh"

// Grid returns a flat rows×cols orthogonal grid of unit-spaced points in
// the z=0 plane, triangulated two triangles per quad cell. Vertex IDs
// follow row-major order: vertex(r,c) = r*cols + c, for r in [0,rows) and
// c in [0,cols).
//
// rows and cols must each be at least 2, otherwise no quad cell exists
// and the returned triangle slice is empty.
func Grid(rows, cols int) ([][3]float64, []mesh.Triangle) {
	points := make([][3]float64, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			points = append(points, [3]float64{float64(c), float64(r), 0})
		}
	}

	var triangles []mesh.Triangle
	vertex := func(r, c int) int32 { return int32(r*cols + c) }
	for r := 0; r+1 < rows; r++ {
		for c := 0; c+1 < cols; c++ {
			tl := vertex(r, c)
			tr := vertex(r, c+1)
			bl := vertex(r+1, c)
			br := vertex(r+1, c+1)
			triangles = append(triangles, mesh.Triangle{tl, tr, br})
			triangles = append(triangles, mesh.Triangle{tl, br, bl})
		}
	}
	return points, triangles
}
