// Package builder_test validates topology constructors: parameter validation,
// exact vertex/edge counts, determinism under a fixed seed, and weight policy.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gwcut/builder"
	"github.com/katalvlaran/gwcut/core"
)

// ------------------------------------------------------------------------
// 1. Parameter validation.
// ------------------------------------------------------------------------

func TestConstructors_ParameterValidation(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		want error
	}{
		{"cycle-too-small", builder.Cycle(2), builder.ErrTooFewVertices},
		{"path-too-small", builder.Path(1), builder.ErrTooFewVertices},
		{"star-too-small", builder.Star(1), builder.ErrTooFewVertices},
		{"complete-too-small", builder.Complete(0), builder.ErrTooFewVertices},
		{"random-too-small", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"random-bad-prob-low", builder.RandomSparse(4, -0.1), builder.ErrInvalidProbability},
		{"random-bad-prob-high", builder.RandomSparse(4, 1.1), builder.ErrInvalidProbability},
		{"random-no-rng", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.cons)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrNilConstructor)
}

// ------------------------------------------------------------------------
// 2. Topology shape.
// ------------------------------------------------------------------------

func TestCycle_Shape(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge("4", "0"), "cycle must close the ring")

	// Every vertex of C_n has weighted degree 2 under unit weights.
	for _, id := range g.Vertices() {
		deg, degErr := g.Degree(id)
		require.NoError(t, degErr)
		assert.InDelta(t, 2.0, deg, 1e-12)
	}
}

func TestPathAndStar_Shape(t *testing.T) {
	p, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 3, p.EdgeCount())

	s, err := builder.BuildGraph(nil, nil, builder.Star(6))
	require.NoError(t, err)
	assert.Equal(t, 5, s.EdgeCount())
	hub, err := s.Degree("0")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, hub, 1e-12)
}

func TestComplete_Shape(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(4))
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount(), "K4 has C(4,2)=6 edges")
	assert.InDelta(t, 6.0, g.TotalWeight(), 1e-12)
}

// ------------------------------------------------------------------------
// 3. Determinism and weight policy.
// ------------------------------------------------------------------------

func TestRandomSparse_DeterministicForSeed(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.Option{builder.WithSeed(7)},
			builder.RandomSparse(16, 0.3),
		)
		require.NoError(t, err)

		return g
	}

	a, b := build(), build()
	assert.Equal(t, a.Edges(), b.Edges(), "same seed must reproduce the instance")
}

func TestRandomSparse_ProbabilityExtremes(t *testing.T) {
	empty, err := builder.BuildGraph(nil, nil, builder.RandomSparse(8, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.EdgeCount())

	full, err := builder.BuildGraph(nil, nil, builder.RandomSparse(8, 1))
	require.NoError(t, err)
	assert.Equal(t, 28, full.EdgeCount(), "p=1 must yield K8")
}

func TestWithWeightFn_DrivesEdgeWeights(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.Option{
			builder.WithSeed(1),
			builder.WithWeightFn(func(r *rand.Rand) float64 { return 2 + r.Float64() }),
		},
		builder.Cycle(3),
	)
	require.NoError(t, err)

	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 2.0)
		assert.Less(t, e.Weight, 3.0)
	}
}

func TestWithIDScheme(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.Option{builder.WithIDScheme(func(i int) string { return string(rune('A' + i)) })},
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}
