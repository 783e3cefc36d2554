// Package baryweight derives the barycentric weight map: for every
// original vertex, non-negative weights over at most three low-resolution
// vertices that sum to one, expressed as a sparse
// (n_orig_input × |seeds|) matrix.
//
// SparseMatrix is a CSR-like row-major sparse matrix, the same storage
// shape surfgraph uses for adjacency: an offset array plus flat, parallel
// column-index and value arrays. Every row has at most three non-zero
// entries by construction.
package baryweight
