// Package meshbuilder constructs small, deterministic synthetic meshes
// used by the core's tests and end-to-end scenarios: a single triangle,
// a tetrahedron, a disconnected pair of triangles, and a regular grid
// triangulation.
//
// Nothing here is part of the remeshing core: it exists only because the
// core has no mesh file reader of its own, and the core's end-to-end
// properties still need executable fixtures. No core package imports
// meshbuilder.
package meshbuilder
