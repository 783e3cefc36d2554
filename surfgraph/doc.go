// Package surfgraph builds a weighted undirected surface graph from a
// triangle mesh, an explicit edge list, or an edge set, and answers
// connected-component queries over it.
//
// Storage is CSR-like: an offset array off[0..n] and a flat neighbor array
// holding (neighbor index, edge weight) pairs, such that vertex i's
// neighbors occupy positions off[i]..off[i+1) of the flat arrays. Edge
// weight is the Euclidean distance between endpoints. Every undirected
// edge {u,v} appears once as a neighbor of u and once as a neighbor of v;
// off is monotonically non-decreasing with off[0]=0 and off[n] equal to
// the flat array length (= 2*|E|). There are no self-loops and no
// duplicate neighbors.
//
// A Graph is built once and is immutable thereafter: no method mutates
// off, the neighbor arrays, or the copied point array.
package surfgraph
