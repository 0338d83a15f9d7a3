// Package matrix_test: Laplacian construction and its structural invariants.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gwcut/builder"
	"github.com/katalvlaran/gwcut/core"
	"github.com/katalvlaran/gwcut/matrix"
)

func TestNewLaplacian_NilAndEmpty(t *testing.T) {
	_, err := matrix.NewLaplacian(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	_, err = matrix.NewLaplacian(core.NewGraph())
	require.ErrorIs(t, err, matrix.ErrEmptyGraph)
}

func TestNewLaplacian_Triangle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3))
	require.NoError(t, err)

	l, err := matrix.NewLaplacian(g)
	require.NoError(t, err)
	require.Equal(t, 3, l.N())

	want := [][]float64{
		{2, -1, -1},
		{-1, 2, -1},
		{-1, -1, 2},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, errAt := l.Mat.At(i, j)
			require.NoError(t, errAt)
			assert.InDelta(t, want[i][j], v, 1e-12, "(%d,%d)", i, j)
		}
	}

	// Ordering bookkeeping must round-trip.
	assert.Equal(t, []string{"0", "1", "2"}, l.ByIndex)
	assert.Equal(t, map[string]int{"0": 0, "1": 1, "2": 2}, l.Index)
}

func TestNewLaplacian_WeightedEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", 2.5))
	require.NoError(t, g.AddVertex("c")) // isolated: zero row

	l, err := matrix.NewLaplacian(g)
	require.NoError(t, err)

	v, err := l.Mat.At(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, -2.5, v, 1e-12)

	v, err = l.Mat.At(2, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v, 1e-12, "isolated vertex contributes a zero row")
}

// Structural invariants on random instances: symmetry, zero row sums, and a
// non-negative quadratic form (PSD witness on random sign vectors).
func TestNewLaplacian_StructuralInvariants(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.Option{
			builder.WithSeed(11),
			builder.WithWeightFn(func(r *rand.Rand) float64 { return r.Float64() }),
		},
		builder.RandomSparse(20, 0.3),
	)
	require.NoError(t, err)

	l, err := matrix.NewLaplacian(g)
	require.NoError(t, err)
	n := l.N()

	require.NoError(t, matrix.ValidateSymmetric(l.Mat, matrix.DefaultEpsilon))

	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	rowSums, err := matrix.MatVec(l.Mat, ones)
	require.NoError(t, err)
	for i, s := range rowSums {
		assert.InDelta(t, 0.0, s, 1e-9, "row %d must sum to zero", i)
	}

	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 20; trial++ {
		x := make([]float64, n)
		for i := range x {
			x[i] = rng.NormFloat64()
		}
		q, errQ := matrix.QuadForm(l.Mat, x)
		require.NoError(t, errQ)
		assert.GreaterOrEqual(t, q, -1e-9, "Laplacian quadratic form must be non-negative")
	}

	// Trace equals twice the total edge weight.
	tr, err := matrix.Trace(l.Mat)
	require.NoError(t, err)
	assert.InDelta(t, 2*g.TotalWeight(), tr, 1e-9)
}
