// Package lasso implements the exclusive-lasso balance variant: a
// per-cluster λ·size² penalty driven by a local coordinate-descent swap
// heuristic instead of a network-simplex solve.
//
// What & Why
//
//	There is no flow graph here: each pass visits every point once, computes
//	the closed-form cost delta of moving it to every other cluster (holding
//	centers fixed for the whole pass), and commits the best strictly
//	improving move immediately so later points in the same pass see the
//	updated cluster sizes. Centers are recomputed only between passes.
//
// Determinism
//
//	Points are visited in index order every pass, so the sequence of
//	accepted moves is a deterministic function of the initial assignment,
//	which is itself drawn from an rng built from the caller-supplied seed.
package lasso
