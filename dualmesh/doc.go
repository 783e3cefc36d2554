// Package dualmesh reconstructs a manifold low-resolution triangulation
// from a Voronoi partition: one low-resolution vertex per seed, and one
// low-resolution triangle for every original triangle whose three
// vertices fall into three distinct Voronoi cells.
//
// Orientation is inherited from the originating input triangle per
// low-resolution triangle, then locally fixed up: if the low-resolution
// triangle's normal disagrees with its source triangle's normal, two of
// its indices are swapped. When several source triangles could emit the
// same dual triangle, the first one encountered determines the
// reference orientation; later duplicates are dropped rather than
// cross-checked against each other.
package dualmesh
