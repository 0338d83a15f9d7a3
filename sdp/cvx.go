// Package sdp: interior-point backend on github.com/hrautila/cvx.
//
// Formulation (CVXOPT's classic mcsdp pair, with w = −L/4):
//
//	(primal)  minimize    𝟙ᵀ·y
//	          subject to  w + diag(y) ⪰ 0
//
//	(dual)    maximize    −tr(w·Z)
//	          subject to  diag(Z) = 1, Z ⪰ 0
//
// The dual variable Z is the relaxed Max-Cut solution X and the dual
// objective −tr(w·Z) equals ¼·⟨L, X⟩. The constraint operator G = −diag(·)
// is applied matrix-free, and each interior-point iteration solves the KKT
// system analytically from the scaling matrix, so the n²×n constraint is
// never materialized.
package sdp

import (
	"fmt"

	"github.com/hrautila/cvx"
	"github.com/hrautila/cvx/sets"
	"github.com/hrautila/linalg"
	"github.com/hrautila/linalg/blas"
	"github.com/hrautila/linalg/lapack"
	hmat "github.com/hrautila/matrix"

	"github.com/katalvlaran/gwcut/matrix"
)

// CVXOption configures the cvx backend.
type CVXOption func(*cvxSolver)

// WithMaxIter caps the interior-point iterations. Panics on k <= 0
// (programmer error); unset means the library default.
func WithMaxIter(k int) CVXOption {
	if k <= 0 {
		panic("sdp: WithMaxIter requires k > 0")
	}

	return func(s *cvxSolver) { s.maxIter = k }
}

// WithVerbose toggles the backend's per-iteration progress output.
func WithVerbose(on bool) CVXOption {
	return func(s *cvxSolver) { s.verbose = on }
}

// WithInputTolerance sets the symmetry tolerance applied to the incoming
// Laplacian. Panics on eps <= 0 (programmer error).
func WithInputTolerance(eps float64) CVXOption {
	if eps <= 0 {
		panic("sdp: WithInputTolerance requires eps > 0")
	}

	return func(s *cvxSolver) { s.tol = eps }
}

// cvxSolver implements Solver via hrautila/cvx.
type cvxSolver struct {
	maxIter int
	verbose bool
	tol     float64
}

// NewCVXSolver returns the interior-point backend with the given options.
func NewCVXSolver(opts ...CVXOption) Solver {
	s := &cvxSolver{maxIter: 0, verbose: false, tol: matrix.DefaultEpsilon}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve implements the Solver contract.
func (s *cvxSolver) Solve(p Problem) (*Solution, error) {
	if p.L == nil {
		return nil, ErrNilProblem
	}
	if err := matrix.ValidateSymmetric(p.L, s.tol); err != nil {
		return nil, fmt.Errorf("cvx: %v: %w", err, ErrDimensionMismatch)
	}

	n := p.L.Rows()
	ld := p.L.Data()

	// w = −L/4, in the backend's column-major layout (L is symmetric, so the
	// transposed write below is also just a layout conversion).
	wdata := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			wdata[j*n+i] = -ld[i*n+j] / 4
		}
	}
	w := hmat.FloatNew(n, n, wdata)

	sol, err := solveDiagConstrained(w, s.maxIter, s.verbose)
	if err != nil {
		return nil, fmt.Errorf("cvx: %v: %w", err, ErrNumericalFailure)
	}
	if sol == nil {
		return nil, fmt.Errorf("cvx: no solution returned: %w", ErrNumericalFailure)
	}
	if sol.Status != cvx.Optimal {
		return nil, fmt.Errorf("cvx: status %v: %w", sol.Status, ErrInfeasible)
	}

	z := sol.Result.At("z")[0]
	hmat.Reshape(z, n, n)

	// Copy the dual variable out, symmetrizing away interior-point noise.
	x, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("cvx: %w", err)
	}
	xd := x.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			xd[i*n+j] = (z.GetAt(i, j) + z.GetAt(j, i)) / 2
		}
	}

	// Recompute the bound from our own types so every backend reports the
	// same quantity: ¼·⟨L, X⟩.
	ip, err := matrix.InnerProduct(p.L, x)
	if err != nil {
		return nil, fmt.Errorf("cvx: %w", err)
	}

	return &Solution{X: x, Bound: ip / 4}, nil
}

// diagOp applies the constraint operator G(y) = −diag(y) (vectorized) and
// its adjoint Gᵀ(z) = −diag(z) without materializing the n²×n matrix: the
// diagonal of the vectorized n×n block lives at stride n+1.
type diagOp struct {
	n int
}

// Gf computes y := alpha·G(x) + beta·y (or the adjoint under OptTrans).
func (g *diagOp) Gf(x, y *hmat.FloatMatrix, alpha, beta float64, trans linalg.Option) error {
	blas.ScalFloat(y, beta)
	if linalg.Equal(trans, linalg.OptNoTrans) {
		blas.AxpyFloat(x, y, -alpha, &linalg.IOpt{"incy", g.n + 1})
	} else {
		blas.AxpyFloat(x, y, -alpha, &linalg.IOpt{"incx", g.n + 1})
	}

	return nil
}

// congruence overwrites the vectorized n×n block x with alpha·rᵀ·x·r,
// exploiting symmetry: halve the diagonal, triangular multiply, then a
// rank-2k symmetric update restores the full product.
func congruence(r, x *hmat.FloatMatrix, alpha float64, n int) error {
	tx := x.Copy()
	hmat.Reshape(tx, n, n)
	tx.Diag().Scale(0.5)

	a := r.Copy()
	if err := blas.TrmmFloat(tx, a, 1.0, linalg.OptLeft); err != nil {
		return err
	}
	if err := blas.Syr2kFloat(r, a, tx, alpha, 0.0, linalg.OptTrans); err != nil {
		return err
	}
	tx.CopyTo(x)

	return nil
}

// diagKKT returns the per-iteration KKT factory.
//
// With the scaling block rti from the solver, the system
//
//	             −diag(z)                     = bx
//	 −diag(y) − (rti·rtiᵀ)·z·(rti·rtiᵀ)       = bs
//
// reduces to a positive-definite solve against (t .* t), t = rti·rtiᵀ:
// factor once per iteration, then each application is two congruences and a
// triangular solve.
func diagKKT(n int) func(W *sets.FloatMatrixSet) (cvx.KKTFunc, error) {
	return func(W *sets.FloatMatrixSet) (cvx.KKTFunc, error) {
		rti := W.At("rti")[0]

		// t = rti·rtiᵀ, stored dense.
		t := hmat.FloatZeros(n, n)
		if err := blas.GemmFloat(rti, rti, t, 1.0, 0.0, linalg.OptTransB); err != nil {
			return nil, err
		}

		// Cholesky factor of the Hadamard square t .* t.
		tsq := hmat.Mul(t, t)
		if err := lapack.Potrf(tsq); err != nil {
			return nil, err
		}

		f := func(x, y, z *hmat.FloatMatrix) error {
			// tbst = t·bs·t.
			tbst := z.Copy()
			hmat.Reshape(tbst, n, n)
			if err := congruence(t, tbst, 1.0, n); err != nil {
				return err
			}

			// x := bx − diag(t·bs·t), then x := (t.*t)⁻¹·x.
			diag := tbst.Diag().Transpose()
			x.Minus(diag)
			if err := lapack.Potrs(tsq, x); err != nil {
				return err
			}

			// z := −rtiᵀ·(diag(x) + bs)·rti, returned in scaled form.
			z.AddIndexes(hmat.MakeIndexSet(0, n*n, n+1), x.FloatArray())

			return congruence(rti, z, -1.0, n)
		}

		return f, nil
	}
}

// solveDiagConstrained runs the cone LP for min 𝟙ᵀy s.t. w + diag(y) ⪰ 0
// with feasible warm starts on both sides.
func solveDiagConstrained(w *hmat.FloatMatrix, maxIter int, verbose bool) (*cvx.Solution, error) {
	n := w.Rows()

	c := hmat.FloatWithValue(n, 1, 1.0)
	G := &diagOp{n: n}

	// Feasible primal start: y0 = (1 − λ_min(w))·𝟙 makes w + diag(y0) ≻ 0.
	lmbda := hmat.FloatZeros(n, 1)
	wp := w.Copy()
	if err := lapack.Syevx(wp, lmbda, nil, 0.0, nil, []int{1, 1}, linalg.OptRangeInt); err != nil {
		return nil, err
	}
	y0 := hmat.FloatZeros(n, 1).Add(-lmbda.GetAt(0, 0) + 1.0)
	s0 := w.Copy()
	s0.Diag().Plus(y0.Transpose())
	hmat.Reshape(s0, n*n, 1)

	// Feasible dual start: the identity satisfies diag(Z) = 1, Z ≻ 0.
	z0 := hmat.FloatIdentity(n)
	hmat.Reshape(z0, n*n, 1)

	dims := sets.DSetNew("l", "q", "s")
	dims.Set("s", []int{n})

	primalstart := sets.FloatSetNew("x", "s")
	dualstart := sets.FloatSetNew("z")
	primalstart.Set("x", y0)
	primalstart.Set("s", s0)
	dualstart.Set("z", z0)

	var solopts cvx.SolverOptions
	solopts.ShowProgress = verbose
	if maxIter > 0 {
		solopts.MaxIter = maxIter
	}

	h := w.Copy()
	hmat.Reshape(h, h.NumElements(), 1)

	return cvx.ConeLpCustomMatrix(c, G, h, nil, nil, dims, diagKKT(n), &solopts, primalstart, dualstart)
}
