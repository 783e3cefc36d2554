package dualmesh

// Stats summarizes the outcome of a dual-mesh construction: how many
// low-resolution vertices and triangles were produced, and whether the
// triangle set came out empty (a reportable degenerate outcome, not an
// error).
type Stats struct {
	NumVertices  int
	NumTriangles int
	Degenerate   bool
}
