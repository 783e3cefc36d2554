package dualmesh

import "github.com/katalvlaran/geomesh/mesh"

// Reorient fixes the winding of each low-resolution triangle so that its
// normal agrees with the normal of its originating input triangle.
// lowTriangles and originTriangles must be the same length and in
// correspondence: originTriangles[i] is the input triangle that produced
// lowTriangles[i].
//
// For each pair, the normal of the low triangle and of its origin are
// computed from lowPoints and inputPoints respectively; if their dot
// product is negative, lowTriangles[i]'s last two indices are swapped to
// flip its winding. lowTriangles is modified in place and also returned
// for convenience.
//
// Complexity: O(len(lowTriangles)).
func Reorient(lowPoints [][3]float64, lowTriangles []mesh.Triangle, inputPoints [][3]float64, originTriangles []mesh.Triangle) []mesh.Triangle {
	if len(lowTriangles) != len(originTriangles) {
		panic(ErrLengthMismatch)
	}

	for i, lt := range lowTriangles {
		ot := originTriangles[i]

		lowNormal := triangleNormal(lowPoints[lt[0]], lowPoints[lt[1]], lowPoints[lt[2]])
		origNormal := triangleNormal(inputPoints[ot[0]], inputPoints[ot[1]], inputPoints[ot[2]])

		if dot(lowNormal, origNormal) < 0 {
			lowTriangles[i][1], lowTriangles[i][2] = lowTriangles[i][2], lowTriangles[i][1]
		}
	}

	return lowTriangles
}

// triangleNormal returns the (unnormalized) normal of triangle (a,b,c):
// the cross product of (b-a) and (c-a). Its sign, not its magnitude, is
// what orientation fixup relies on.
func triangleNormal(a, b, c [3]float64) [3]float64 {
	u := sub(b, a)
	v := sub(c, a)
	return cross(u, v)
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
