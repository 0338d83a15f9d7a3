// Package sdp: boundary types, sentinel errors and solution verification.
package sdp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gwcut/matrix"
)

// Sentinel errors for the relaxation boundary.
var (
	// ErrNilSolver indicates a nil Solver was handed to the pipeline.
	ErrNilSolver = errors.New("sdp: solver is nil")

	// ErrNilProblem indicates Solve was called with a nil Laplacian.
	ErrNilProblem = errors.New("sdp: problem matrix is nil")

	// ErrInfeasible indicates the backend reported the relaxation
	// infeasible or unbounded. Surfaced to the caller, never retried.
	ErrInfeasible = errors.New("sdp: relaxation infeasible")

	// ErrNumericalFailure indicates the backend stopped without an optimal
	// certificate (iteration cap, numerical breakdown).
	ErrNumericalFailure = errors.New("sdp: solver numerical failure")

	// ErrDimensionMismatch indicates the solution shape does not match the
	// problem. Programming error: fail fast.
	ErrDimensionMismatch = errors.New("sdp: dimension mismatch")

	// ErrAsymmetric indicates the returned X is not symmetric within
	// tolerance.
	ErrAsymmetric = errors.New("sdp: solution matrix is not symmetric")

	// ErrNotUnitDiagonal indicates diag(X) deviates from 1 beyond tolerance.
	ErrNotUnitDiagonal = errors.New("sdp: solution diagonal is not unit")

	// ErrNotPSD indicates X has an eigenvalue below the negative tolerance.
	ErrNotPSD = errors.New("sdp: solution matrix is not positive semidefinite")
)

// Problem is the relaxation input: the graph Laplacian.
type Problem struct {
	// L is the n×n symmetric Laplacian matrix.
	L *matrix.Dense
}

// Solution is the relaxation output.
type Solution struct {
	// X is the n×n symmetric PSD matrix with unit diagonal (within the
	// backend's tolerance; re-check with Verify).
	X *matrix.Dense

	// Bound is the relaxation objective ¼·⟨L, X⟩ — an upper bound on the
	// maximum cut weight.
	Bound float64
}

// Solver is the opaque collaborator contract: Laplacian in, (X, bound) out.
// Implementations must return a distinguished error (ErrInfeasible,
// ErrNumericalFailure) instead of a partial solution.
type Solver interface {
	Solve(p Problem) (*Solution, error)
}

// Verify checks that s is a structurally valid relaxation solution for p:
// matching shape, symmetry, unit diagonal within tol, eigenvalues ≥ −tol,
// and a finite bound. maxIter caps the eigen sweep of the PSD check.
//
// Error priority: nil/shape → symmetry → diagonal → PSD → bound.
func Verify(p Problem, s *Solution, tol float64, maxIter int) error {
	if p.L == nil {
		return ErrNilProblem
	}
	if s == nil || s.X == nil {
		return fmt.Errorf("Verify: solution missing: %w", ErrDimensionMismatch)
	}

	n := p.L.Rows()
	if s.X.Rows() != n || s.X.Cols() != n {
		return fmt.Errorf("Verify: X is %dx%d, want %dx%d: %w",
			s.X.Rows(), s.X.Cols(), n, n, ErrDimensionMismatch)
	}

	if err := matrix.ValidateSymmetric(s.X, tol); err != nil {
		return fmt.Errorf("Verify: %v: %w", err, ErrAsymmetric)
	}

	for i := 0; i < n; i++ {
		d, err := s.X.At(i, i)
		if err != nil {
			return fmt.Errorf("Verify: %w", err)
		}
		if math.Abs(d-1) > tol {
			return fmt.Errorf("Verify: X[%d][%d]=%v: %w", i, i, d, ErrNotUnitDiagonal)
		}
	}

	eig, _, err := matrix.EigenSym(s.X, tol, maxIter)
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	for _, ev := range eig {
		if ev < -tol {
			return fmt.Errorf("Verify: eigenvalue %v: %w", ev, ErrNotPSD)
		}
	}

	if math.IsNaN(s.Bound) || math.IsInf(s.Bound, 0) {
		return fmt.Errorf("Verify: bound=%v: %w", s.Bound, ErrNumericalFailure)
	}

	return nil
}
