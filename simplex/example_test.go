package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/balclust/matrix"
	"github.com/katalvlaran/balclust/simplex"
)

// ExampleBuildHard balances four points into two clusters of exactly two,
// given a cost matrix that already favors pairing {0,1} against {2,3}.
func ExampleBuildHard() {
	costs, _ := matrix.NewDense(4, 2)
	rows := [][]float64{{0, 100}, {1, 81}, {81, 1}, {100, 0}}
	for i, row := range rows {
		_ = costs.SetRow(i, row)
	}

	solver, err := simplex.BuildHard(costs, 2, 2, simplex.Options{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	solver.Simplex()

	fmt.Println(solver.Assignments())
	fmt.Println(solver.MinCost())
	// Output:
	// [0 0 1 1]
	// 2
}
