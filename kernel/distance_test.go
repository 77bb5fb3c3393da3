package kernel_test

import (
	"testing"

	"github.com/katalvlaran/balclust/kernel"
	"github.com/stretchr/testify/require"
)

func TestSquaredEuclidean(t *testing.T) {
	cases := []struct {
		name string
		u, v []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"1d unit", []float64{0}, []float64{1}, 1},
		{"3-4-5", []float64{0, 0}, []float64{3, 4}, 25},
		{"negatives", []float64{-1, -1}, []float64{1, 1}, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := kernel.SquaredEuclidean(tc.u, tc.v)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSquaredEuclidean_DimensionMismatch(t *testing.T) {
	_, err := kernel.SquaredEuclidean([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, kernel.ErrDimensionMismatch)
}

func TestMustSquaredEuclidean_PanicsOnMismatch(t *testing.T) {
	require.Panics(t, func() {
		kernel.MustSquaredEuclidean([]float64{1}, []float64{1, 2})
	})
}
