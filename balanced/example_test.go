package balanced_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/balclust/balanced"
	"github.com/katalvlaran/balclust/matrix"
	"github.com/katalvlaran/balclust/seeding"
)

// ExampleClusterHard balances two well-separated pairs of points into two
// clusters of size two each. The printed sizes and SSE are independent of
// which of the two clusters ends up labeled 0 versus 1.
func ExampleClusterHard() {
	X, _ := matrix.NewDense(4, 1)
	for i, v := range []float64{0, 1, 10, 11} {
		_ = X.SetRow(i, []float64{v})
	}

	A, _, sse, err := balanced.ClusterHard(X, 2, balanced.Options{Init: seeding.Forgy, Seed: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sizes := []int{0, 0}
	for _, j := range A {
		sizes[j]++
	}
	sort.Ints(sizes)

	fmt.Println(sizes)
	fmt.Println(sse)
	// Output:
	// [2 2]
	// 1
}
