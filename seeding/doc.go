// Package seeding provides the initial-assignment and centroid-update
// primitives shared by every balclust outer loop: Forgy and Random-Partition
// initialization, and the post-pivot centroid recomputation with
// empty-cluster reseeding.
//
// What & Why
//
//	Every variant (hard, soft, lasso) starts from the same two choices: how
//	to seed the first assignment, and how to turn an assignment plus the
//	data back into k centers. Factoring them out here keeps balanced and
//	lasso focused on their own outer-loop and flow-graph concerns.
//
// Determinism
//
//	All randomness is drawn from a caller-supplied *rand.Rand (never a
//	package-level source, never time-seeded). The same seed and the same
//	data always produce the same initial assignment and the same reseed
//	choices for empty clusters.
package seeding
