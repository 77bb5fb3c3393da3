// Package balanced drives the Lloyd-style outer loop shared by the hard
// and soft balance variants: seed an assignment, build a network-simplex
// solver over it, alternate centroid recomputation with a re-solve until
// the decoded assignment is a fixed point.
//
// What & Why
//
//	Both variants reduce to the same loop shape; they differ only in how
//	the sink sub-structure is built. ClusterHard, ClusterHardBounded and
//	ClusterSoft each supply their own simplex.Solver builder to a single
//	internal loop rather than duplicating the iteration logic three times,
//	mirroring the "polymorphism over variant" design used by the
//	network-simplex solver itself.
//
// Determinism
//
//	Given the same data, k, variant parameters, init method, warm-start
//	flag, worker count and seed, every run produces bit-identical A, M and
//	SSE; warm-start only changes how many pivots the re-solve performs, not
//	the result.
package balanced
