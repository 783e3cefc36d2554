// Package mesh defines the input value type for the remeshing core: an
// ordered point array and an ordered triangle array, plus the validation
// that every downstream package relies on instead of re-checking bounds
// itself.
//
// Mesh is immutable once constructed: New defensively copies both input
// slices, so mutating the caller's arrays afterward has no effect on the
// returned Mesh (mirrors the ownership rule spec'd for the surface graph).
package mesh
