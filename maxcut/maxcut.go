// Package maxcut: the pipeline driver and cut evaluation helpers.
package maxcut

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gwcut/core"
	"github.com/katalvlaran/gwcut/matrix"
	"github.com/katalvlaran/gwcut/rounding"
	"github.com/katalvlaran/gwcut/sdp"
)

const opMaxCut = "MaxCut"

// MaxCut runs the full approximation pipeline on g and returns the rounded
// partition with its evaluation. See the package documentation for the stage
// breakdown.
//
// Complexity is dominated by the relaxation solve (interior-point on an n×n
// semidefinite cone); rounding adds O(k·n²) for k trials.
func MaxCut(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opMaxCut, ErrNilGraph)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Solver == nil {
		return nil, fmt.Errorf("%s: %w", opMaxCut, sdp.ErrNilSolver)
	}

	l, err := matrix.NewLaplacian(g)
	if err != nil {
		if errors.Is(err, matrix.ErrEmptyGraph) {
			return nil, fmt.Errorf("%s: %w", opMaxCut, ErrEmptyGraph)
		}

		return nil, fmt.Errorf("%s: %w", opMaxCut, err)
	}

	total, err := TotalWeight(l.Mat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMaxCut, err)
	}

	p := sdp.Problem{L: l.Mat}
	sol, err := o.Solver.Solve(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMaxCut, err)
	}
	if err = sdp.Verify(p, sol, o.Tol, matrix.DefaultEigenMaxIter); err != nil {
		return nil, fmt.Errorf("%s: %w", opMaxCut, err)
	}

	ropts := []rounding.Option{
		rounding.WithTrials(o.Trials),
		rounding.WithParallelism(o.Parallelism),
		rounding.WithTolerance(o.Tol),
		rounding.WithSeed(o.Seed),
	}
	if o.Rng != nil {
		ropts = append(ropts, rounding.WithRand(o.Rng))
	}
	if o.TargetRatio > 0 && sol.Bound > 0 {
		ropts = append(ropts, rounding.WithTarget(o.TargetRatio*sol.Bound))
	}

	cut, err := rounding.Best(l.Mat, sol.X, ropts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMaxCut, err)
	}

	assign := make(map[string]int8, l.N())
	for i, id := range l.ByIndex {
		assign[id] = cut.Assign[i]
	}

	return &Result{
		Assign:      assign,
		Vector:      cut.Assign,
		Order:       l.ByIndex,
		CutWeight:   cut.Weight,
		TotalWeight: total,
		Bound:       sol.Bound,
		Ratio:       Ratio(cut.Weight, sol.Bound),
		Trials:      cut.Trials,
	}, nil
}

// CutWeight evaluates the weight of the partition x against the Laplacian l:
// ¼·xᵀLx. x holds one ±1 entry per vertex in l's row order.
func CutWeight(l *matrix.Dense, x []int8) (float64, error) {
	xf := make([]float64, len(x))
	for i, s := range x {
		xf[i] = float64(s)
	}

	q, err := matrix.QuadForm(l, xf)
	if err != nil {
		return 0, fmt.Errorf("CutWeight: %w", err)
	}

	return q / 4, nil
}

// TotalWeight returns the sum of all edge weights encoded in the Laplacian:
// Tr(L)/2 (each edge contributes its weight to both endpoint degrees).
func TotalWeight(l *matrix.Dense) (float64, error) {
	tr, err := matrix.Trace(l)
	if err != nil {
		return 0, fmt.Errorf("TotalWeight: %w", err)
	}

	return tr / 2, nil
}

// Ratio is the realized approximation quality cut/bound, defined as 0 when
// the bound is not positive (an edgeless graph has bound 0 and cut 0).
func Ratio(cut, bound float64) float64 {
	if bound <= 0 {
		return 0
	}

	return cut / bound
}
