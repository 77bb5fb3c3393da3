// Package matrix provides the dense, array-based numeric substrate shared by
// the cost-matrix builder, the seeding/centroid routines, and the
// network-simplex solver: a point set X (N×s), a center set M (k×s), and a
// cost matrix C (N×k) are all *matrix.Dense values.
//
// What & Why
//
//   - Matrix is a minimal interface (Rows/Cols/At/Set/Clone) so algorithms can
//     be written generically, while Dense gives them a row-major flat-slice
//     fast path (no interface dispatch, no bounds-checked At/Set in hot loops).
//   - Dense.RowCopy / Dense.SetRow give callers a whole point/center row
//     without threading s individual At/Set calls through the generic
//     interface — exactly what Forgy initialization and the cost-matrix
//     builder's hot loop need.
//
// Determinism
//
//	No randomness lives in this package. Every method is a pure function of
//	its receiver and arguments; row/column iteration order is always
//	ascending, so two identical matrices always produce identical output.
//
// Numeric policy
//
//	Set rejects NaN/±Inf by default (DefaultValidateNaNInf = true), matching
//	the fact that squared-Euclidean costs are always finite for finite input
//	points; pass false to newDenseWithPolicy only in tests that intentionally
//	probe the error path.
package matrix
