// Package simplex implements a primal network-simplex solver specialized to
// the transportation graph used by the balanced (hard and soft) clustering
// routines: a source/sink depot s, N point-nodes, and k cluster-nodes, with
// unit-capacity point-arcs (p_i, c_j) carrying squared-distance cost and a
// per-cluster sink-arc bundle encoding either a hard [L,U] capacity or a
// soft per-cluster size penalty.
//
// What & Why
//
//	Every outer-loop iteration re-solves the same graph with only the
//	point-arc costs changed (the centers moved, the topology didn't), so the
//	solver keeps its spanning-tree basis across calls: UpdateCosts mutates
//	arc costs in place and the next Simplex call warm-starts from the
//	existing basis instead of rebuilding from scratch.
//
// Representation
//
//	The spanning tree is stored as three parallel arrays indexed by vertex:
//	parent (the adjacent tree vertex), parentEdge (the arc connecting them),
//	and parentDir (+1 if the arc is oriented vertex->parent, -1 if
//	parent->vertex). There are no child lists; every tree walk starts at a
//	leaf and walks toward the root, which is all a pivot or a potential
//	lookup ever needs. Node potentials are cached per vertex behind a global
//	tag counter: a potential is valid only when its cached tag matches the
//	current tag, so a single tag bump (on UpdateCosts or after a pivot)
//	invalidates every cached potential in O(1) without walking the tree.
//
// Determinism
//
//	The pricing scan is a fixed cyclic order over the arc arena; a pivot
//	restarts the miss counter but not the scan cursor, so the same initial
//	basis and the same cost matrix always reach the same sequence of pivots
//	and the same final basis.
package simplex
