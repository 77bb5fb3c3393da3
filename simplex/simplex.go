package simplex

import "fmt"

// Simplex runs the pricing loop to optimality: it scans arcs cyclically,
// and for every non-tree arc with spare capacity computes its reduced cost;
// an arc priced below -epsilon is pivoted in and the miss counter (not the
// scan cursor) resets, so termination requires one full revolution with no
// improving arc found.
func (s *Solver) Simplex() {
	eps := s.opts.epsilon()
	numEdges := len(s.arcs)

	for edgeIndex, scanned := 0, 0; scanned < numEdges; edgeIndex, scanned = edgeIndex+1, scanned+1 {
		if edgeIndex == numEdges {
			edgeIndex = 0
		}
		a := &s.arcs[edgeIndex]
		if a.inTree || a.cap == 0 {
			continue
		}

		potFrom := s.getPotential(a.from)
		potTo := s.getPotential(a.to)
		direction := 1
		if a.flow != 0 {
			direction = -1
		}
		delta := (potTo - potFrom + a.cost) * float64(direction)

		if delta < -eps {
			if s.opts.Verbose {
				fmt.Printf("simplex: pivot arc %d (from=%d to=%d) delta=%.6g\n", edgeIndex, a.from, a.to, delta)
			}
			s.pivot(edgeIndex, direction, delta)
			scanned = 0
		}
	}
}

// getPotential returns the node potential of u, recomputing it against the
// parent chain if its cached tag is stale. The root (vertex 0) always has
// potential 0 and a tag kept current by every tag bump.
func (s *Solver) getPotential(u int) float64 {
	if s.potentialTag[u] != s.tag {
		s.potential[u] = s.getPotential(s.parent[u]) + float64(s.parentDir[u])*s.arcs[s.parentEdge[u]].cost
		s.potentialTag[u] = s.tag
	}
	return s.potential[u]
}

// getParentResCap returns the residual capacity of u's parent arc in the
// given direction relative to the arc's stored orientation.
func (s *Solver) getParentResCap(u, direction int) int {
	pe := &s.arcs[s.parentEdge[u]]
	if direction*s.parentDir[u] > 0 {
		return pe.cap - pe.flow
	}
	return pe.flow
}

// applyParentFlow adjusts u's parent arc's flow by direction*parentDir[u]*flow.
func (s *Solver) applyParentFlow(u, direction, flow int) {
	pe := &s.arcs[s.parentEdge[u]]
	pe.flow += direction * s.parentDir[u] * flow
}

// changeDirection reroots the tree path from u up to end: every vertex on
// the path above u, end included, gets the vertex below it as its new
// parent (with that edge's direction flipped), so end's old parent arc is
// no longer referenced. u's own parent entries are left unchanged for the
// caller to overwrite.
func (s *Solver) changeDirection(u, end int) {
	if u == end {
		return
	}
	p := s.parent[u]
	s.changeDirection(p, end)
	s.parent[p] = u
	s.parentEdge[p] = s.parentEdge[u]
	s.parentDir[p] = -s.parentDir[u]
}

// findLca returns the lowest common ancestor of u and v in the spanning
// tree, walking each to the root (vertex 0) via parent pointers.
func (s *Solver) findLca(u, v int) int {
	t := u
	for t != 0 {
		s.visited[t] = true
		t = s.parent[t]
	}
	for v != 0 && !s.visited[v] {
		v = s.parent[v]
	}
	t = u
	for t != 0 {
		s.visited[t] = false
		t = s.parent[t]
	}
	return v
}

// pivot brings the non-tree arc at edgeIndex into the basis, oriented by
// direction (+1 if it was at flow 0, -1 if at cap), with reduced cost delta.
func (s *Solver) pivot(edgeIndex, direction int, delta float64) {
	e := &s.arcs[edgeIndex]

	minResCap := e.cap
	minResCapVertex := -1
	minResDirection := 0

	lca := s.findLca(e.from, e.to)

	for cur := e.from; cur != lca; cur = s.parent[cur] {
		resCap := s.getParentResCap(cur, -direction)
		if resCap < minResCap {
			minResCap = resCap
			minResCapVertex = cur
			minResDirection = 1
		}
	}
	for cur := e.to; cur != lca; cur = s.parent[cur] {
		resCap := s.getParentResCap(cur, direction)
		if resCap < minResCap {
			minResCap = resCap
			minResCapVertex = cur
			minResDirection = -1
		}
	}

	if minResCap > 0 {
		s.minCost += float64(minResCap) * delta
		e.flow += direction * minResCap
		for cur := e.from; cur != lca; cur = s.parent[cur] {
			s.applyParentFlow(cur, -direction, minResCap)
		}
		for cur := e.to; cur != lca; cur = s.parent[cur] {
			s.applyParentFlow(cur, direction, minResCap)
		}
	}

	if minResDirection != 0 {
		s.tag++
		s.potentialTag[0] = s.tag

		s.arcs[s.parentEdge[minResCapVertex]].inTree = false
		e.inTree = true

		var cur int
		if minResDirection == 1 {
			cur = e.from
		} else {
			cur = e.to
		}
		s.changeDirection(cur, minResCapVertex)

		s.parentEdge[cur] = edgeIndex
		if cur == e.from {
			s.parent[cur] = e.to
		} else {
			s.parent[cur] = e.from
		}
		s.parentDir[cur] = minResDirection
	}
}
