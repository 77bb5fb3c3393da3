// Package kernel provides the single distance primitive every other
// balclust package builds on: squared Euclidean distance between two
// equal-length feature vectors.
//
// What & Why
//
//	All of balclust's cost accounting — the cost-matrix builder, the
//	outer loops' final SSE, the lasso routine's swap deltas — reduces to
//	repeated calls of this one kernel. Keeping it in its own package with
//	zero dependencies (not even matrix) lets every caller choose its own
//	storage layout (a matrix.Dense row, a plain []float64) without an
//	import cycle.
//
// Determinism
//
//	Pure function of its two arguments; no allocation, no rounding beyond
//	what IEEE-754 float64 arithmetic already performs in a fixed left-to-right
//	summation order.
package kernel
