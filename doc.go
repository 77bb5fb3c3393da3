// Package balclust solves balanced clustering: partition N points in R^s
// into k groups to minimize a k-means-style distortion while the cluster
// size distribution is constrained or penalized.
//
// What & Why
//
//	Three variants share the same point/center data model but differ in how
//	balance is enforced:
//
//	  • Hard balance:    every cluster size lies in a closed interval [L,U]
//	  • Soft balance:    a convex per-cluster size penalty f(h,x) is added
//	                     to the assignment cost and realized as a
//	                     minimum-cost-flow problem
//	  • Exclusive lasso: a λ·size² penalty solved by local coordinate
//	                     descent instead of a flow solve
//
// The hard and soft variants both reduce to a transportation graph solved
// by a primal network-simplex solver with warm-start support, driven by a
// Lloyd-style outer loop that alternates assignment with centroid
// recomputation until the decoded assignment is a fixed point. Pure Go —
// no cgo, no hidden dependencies.
//
// Subpackages:
//
//	kernel/     — squared Euclidean distance primitive
//	matrix/     — dense row-major matrix storage (X, M, C)
//	costmatrix/ — parallel N×k assignment-cost matrix builder
//	seeding/    — Forgy / Random-Partition initialization, centroid update
//	simplex/    — primal network-simplex solver with warm-start
//	balanced/   — hard and soft balance entry points (Lloyd outer loop)
//	lasso/      — exclusive-lasso entry point (coordinate-descent swaps)
//
//	go get github.com/katalvlaran/balclust
package balclust
