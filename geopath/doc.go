// Package geopath computes multi-source shortest paths over a surfgraph:
// given a set of seed vertices, the nearest seed and geodesic distance
// to it for every vertex.
//
// The algorithm is Dijkstra with a lazy-decrease-key min-heap, generalized
// to multiple sources by seeding the heap with every seed at distance
// zero. Ties between equidistant seeds are broken deterministically by the
// seed's rank (its position in the seed slice): lower rank wins.
//
// The same relaxation engine also powers vfps's incremental partition
// update (UpdateWithSeed): seeding only the newly promoted vertex and
// reusing the existing dist/nearest arrays as upper bounds makes the
// update touch only the region whose nearest seed actually changes,
// instead of rerunning the whole multi-source search.
package geopath
