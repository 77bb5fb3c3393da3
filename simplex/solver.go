package simplex

import (
	"fmt"

	"github.com/katalvlaran/balclust/matrix"
)

// Solver holds one transportation-graph instance and its current spanning
// tree basis. Vertex 0 is the depot s; vertices 1..n are points; vertices
// n+1..n+k are clusters.
type Solver struct {
	n, k int

	arcs []arc

	parent       []int
	parentEdge   []int
	parentDir    []int
	visited      []bool
	potential    []float64
	potentialTag []int
	tag          int

	minCost float64
	opts    Options
}

// N returns the number of points.
func (s *Solver) N() int { return s.n }

// K returns the number of clusters.
func (s *Solver) K() int { return s.k }

// MinCost returns the total cost of the current flow (Σ flow·cost over all
// arcs). It reflects the basis as of the last Simplex or UpdateCosts call.
func (s *Solver) MinCost() float64 { return s.minCost }

// BuildHard constructs the hard-balance transportation graph: N·k
// point-arcs plus one sink-arc per cluster of capacity upper-lower, cost 0.
//
// Grounded on the hard-balance sink-arc construction (§4.5): each cluster's
// sink-arc flow starts at its round-robin share minus lower, so that the
// round-robin initial assignment is already a feasible basic solution.
func BuildHard(costs *matrix.Dense, lower, upper int, opts Options) (*Solver, error) {
	if err := validateCosts(costs); err != nil {
		return nil, err
	}
	n, k := costs.Rows(), costs.Cols()
	if lower > upper || k*lower > n || k*upper < n {
		return nil, fmt.Errorf("simplex: BuildHard(n=%d, k=%d, lower=%d, upper=%d): %w", n, k, lower, upper, ErrInvalidBounds)
	}

	s := &Solver{n: n, k: k, opts: opts}
	sumFlow, err := s.buildBasic(costs, 1)
	if err != nil {
		return nil, err
	}

	for i := 0; i < k; i++ {
		a := &s.arcs[n*k+i]
		a.from = n + 1 + i
		a.to = 0
		a.cap = upper - lower
		a.flow = sumFlow[i] - lower
		a.cost = 0
		a.inTree = true
	}
	s.buildTree()

	return s, nil
}

// Penalty is the cumulative per-cluster size cost f(cluster, size) used by
// BuildSoft. Penalty must be defined for size in [0, n] and is expected
// (but not required) to be convex, i.e. its forward differences
// non-decreasing, so that an optimal flow fills the lowest-rank sink-arcs
// first.
type Penalty func(cluster, size int) float64

// BuildSoft constructs the soft-balance transportation graph: N·k
// point-arcs, plus for every cluster j an N-arc chain of unit-capacity
// sink-arcs, arc at rank r (1-indexed) costing Penalty(j,r)-Penalty(j,r-1).
//
// Grounded on the telescoped marginal-cost sink-arc construction (§4.5):
// the chain realizes an arbitrary convex per-cluster size penalty as a sum
// of unit arcs the simplex solver can route through like any other arc.
func BuildSoft(costs *matrix.Dense, penalty Penalty) (*Solver, error) {
	if err := validateCosts(costs); err != nil {
		return nil, err
	}
	if penalty == nil {
		return nil, ErrNilPenalty
	}
	n, k := costs.Rows(), costs.Cols()

	s := &Solver{n: n, k: k}
	sumFlow, err := s.buildBasic(costs, n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < k; i++ {
		for j := 0; j < n; j++ {
			a := &s.arcs[n*k+i*n+j]
			a.from = n + 1 + i
			a.to = 0
			a.cap = 1
			if sumFlow[i] >= j+1 {
				a.flow = 1
			} else {
				a.flow = 0
			}
			a.inTree = j == 0
			a.cost = penalty(i, j+1) - penalty(i, j)
		}
	}
	s.buildTree()

	return s, nil
}

func validateCosts(costs *matrix.Dense) error {
	if err := matrix.ValidateNotNil(costs); err != nil {
		return fmt.Errorf("simplex: %w", err)
	}
	if costs.Rows() == 0 || costs.Cols() == 0 {
		return ErrEmptyCosts
	}
	return nil
}

// buildBasic allocates the arc arena (N*k point-arcs plus k*extraPerCluster
// sink-arcs), fills the point-arcs from costs, and seeds a round-robin
// initial feasible assignment: point i goes to cluster i%k. It returns
// sum_flow[j], the number of points initially assigned to cluster j.
func (s *Solver) buildBasic(costs *matrix.Dense, extraPerCluster int) ([]int, error) {
	n, k := s.n, s.k
	sumFlow := make([]int, k)
	for i := 0; i < n; i++ {
		sumFlow[i%k]++
	}

	vertexNum := n + k + 1
	edgeNum := n*k + k*extraPerCluster

	s.parent = make([]int, vertexNum)
	s.parentEdge = make([]int, vertexNum)
	s.parentDir = make([]int, vertexNum)
	s.visited = make([]bool, vertexNum)
	s.potential = make([]float64, vertexNum)
	s.potentialTag = make([]int, vertexNum)
	for i := range s.potentialTag {
		s.potentialTag[i] = -1
	}
	s.tag = 0
	s.potentialTag[0] = 0
	s.arcs = make([]arc, edgeNum)

	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			c, err := costs.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("simplex: buildBasic: %w", err)
			}
			a := &s.arcs[i*k+j]
			a.from = i + 1
			a.to = n + 1 + j
			a.cap = 1
			a.flow = 0
			a.cost = c
			a.inTree = false
		}
	}
	for i := 0; i < n; i++ {
		j := i % k
		s.arcs[i*k+j].flow = 1
		s.arcs[i*k+j].inTree = true
	}

	return sumFlow, nil
}

// buildTree derives the initial parent/parentEdge/parentDir arrays from
// every in-tree arc, and computes the initial min_cost as Σ flow·cost over
// all arcs (non-tree arcs carry flow 0 except saturated soft sink-arcs,
// which are accounted for here too).
func (s *Solver) buildTree() {
	s.minCost = 0
	for idx := range s.arcs {
		a := &s.arcs[idx]
		s.minCost += float64(a.flow) * a.cost
		if a.inTree {
			s.parent[a.from] = a.to
			s.parentEdge[a.from] = idx
			s.parentDir[a.from] = 1
		}
	}
}
