package simplex

import (
	"fmt"

	"github.com/katalvlaran/balclust/matrix"
)

// UpdateCosts overwrites every point-arc's cost from costs (N×k) in place,
// adjusting min_cost for any arc currently carrying flow, and bumps the
// global tag so every non-root potential is recomputed lazily on next use.
// The spanning tree and every arc's flow are left untouched: this is the
// warm-start contract that lets Simplex be called again to re-optimize
// from the existing basis instead of rebuilding it.
func (s *Solver) UpdateCosts(costs *matrix.Dense) error {
	if err := validateCosts(costs); err != nil {
		return err
	}
	if costs.Rows() != s.n || costs.Cols() != s.k {
		return fmt.Errorf("simplex: UpdateCosts(%d,%d) vs solver(%d,%d): %w", costs.Rows(), costs.Cols(), s.n, s.k, ErrDimensionMismatch)
	}

	for idx := range s.arcs {
		a := &s.arcs[idx]
		if a.from < 1 || a.from > s.n {
			continue
		}
		c, err := costs.At(a.from-1, a.to-s.n-1)
		if err != nil {
			return fmt.Errorf("simplex: UpdateCosts: %w", err)
		}
		if a.flow == 1 {
			s.minCost += c - a.cost
		}
		a.cost = c
	}

	s.tag++
	s.potentialTag[0] = s.tag

	return nil
}

// Assignments returns A where A[i] = j for the unique cluster j such that
// the point-arc (p_i, c_j) carries flow 1. Every point has exactly one
// saturated outgoing arc by construction, so every entry is set exactly
// once.
func (s *Solver) Assignments() []int {
	a := make([]int, s.n)
	for idx := range s.arcs {
		arcRef := &s.arcs[idx]
		if arcRef.flow == 1 && arcRef.from >= 1 && arcRef.from <= s.n {
			a[arcRef.from-1] = arcRef.to - s.n - 1
		}
	}
	return a
}
