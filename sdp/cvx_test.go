// Package sdp_test: the cvx interior-point backend on small instances with
// known relaxation optima.
package sdp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gwcut/builder"
	"github.com/katalvlaran/gwcut/matrix"
	"github.com/katalvlaran/gwcut/sdp"
)

// solverTol is the structural tolerance applied to interior-point output,
// looser than DefaultEpsilon because the backend stops at ~1e-7 residuals.
const solverTol = 1e-5

// solveFor builds the Laplacian of the given constructor and runs the cvx
// backend on it.
func solveFor(t *testing.T, cons builder.Constructor) (sdp.Problem, *sdp.Solution) {
	t.Helper()

	g, err := builder.BuildGraph(nil, nil, cons)
	require.NoError(t, err)
	l, err := matrix.NewLaplacian(g)
	require.NoError(t, err)

	p := sdp.Problem{L: l.Mat}
	sol, err := sdp.NewCVXSolver().Solve(p)
	require.NoError(t, err)
	require.NotNil(t, sol)

	return p, sol
}

func TestCVXSolver_NilProblem(t *testing.T) {
	_, err := sdp.NewCVXSolver().Solve(sdp.Problem{})
	require.ErrorIs(t, err, sdp.ErrNilProblem)
}

func TestCVXSolver_Triangle(t *testing.T) {
	if testing.Short() {
		t.Skip("interior-point solve")
	}

	p, sol := solveFor(t, builder.Cycle(3))

	// Known optimum 9/4; any feasible X keeps the bound ≥ the true max cut 2.
	assert.InDelta(t, 2.25, sol.Bound, 1e-3)
	assert.GreaterOrEqual(t, sol.Bound, 2.0-1e-6, "relaxation must upper-bound the max cut")

	require.NoError(t, sdp.Verify(p, sol, solverTol, matrix.DefaultEigenMaxIter))
}

func TestCVXSolver_K4(t *testing.T) {
	if testing.Short() {
		t.Skip("interior-point solve")
	}

	p, sol := solveFor(t, builder.Complete(4))

	// K4 relaxation optimum is exactly n²/4 = 4, met by X with −1/3
	// off-diagonal entries; it coincides with the true max cut.
	assert.InDelta(t, 4.0, sol.Bound, 1e-3)
	assert.GreaterOrEqual(t, sol.Bound, 4.0-1e-3)

	require.NoError(t, sdp.Verify(p, sol, solverTol, matrix.DefaultEigenMaxIter))
}

func TestCVXSolver_WeightedPath(t *testing.T) {
	if testing.Short() {
		t.Skip("interior-point solve")
	}

	// P_3 is bipartite: cutting both edges is optimal and the relaxation is
	// tight (rank-1 optimizer), so the bound equals the total weight 3.
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("0", "1", 2)) // overwrite: weights 2 and 1
	l, err := matrix.NewLaplacian(g)
	require.NoError(t, err)

	p := sdp.Problem{L: l.Mat}
	sol, err := sdp.NewCVXSolver(sdp.WithMaxIter(100)).Solve(p)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, sol.Bound, 1e-3)
	require.NoError(t, sdp.Verify(p, sol, solverTol, matrix.DefaultEigenMaxIter))
}
