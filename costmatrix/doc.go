// Package costmatrix builds the N×k assignment-cost matrix C consumed by
// the network-simplex solver: C[i,j] = squared Euclidean distance between
// point i and center j.
//
// What & Why
//
//	Every outer-loop iteration of the balanced (hard and soft) routines
//	needs a fresh C once the centers M move. For N·k in the low millions this is
//	the single largest per-iteration cost, so Build fans the N*k cells out
//	over W worker goroutines in a cyclic stripe (worker t owns flat indices
//	t, t+W, t+2W, …). Writes are disjoint by construction — no
//	synchronization beyond the join is needed, matching the deterministic,
//	lock-free contract in the spec's concurrency model.
//
// Determinism
//
//	Each cell is a pure function of its own (i,j); partitioning N*k cells
//	across goroutines changes only which goroutine computes which cell, not
//	the value. W=1 and W>1 therefore produce bit-identical matrices; only
//	wall time differs.
package costmatrix
