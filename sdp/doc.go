// Package sdp defines the semidefinite-relaxation boundary of gwcut and
// ships an interior-point backend built on github.com/hrautila/cvx.
//
// The relaxation:
//
//	maximize   ¼·⟨L, X⟩
//	subject to diag(X) = 1,  X ⪰ 0,  X symmetric
//
// where L is the graph Laplacian. Dropping the rank-1 constraint on X makes
// the problem convex; the optimum is an upper bound on the maximum cut
// weight, and factoring the returned X drives the hyperplane rounding stage.
//
// The boundary is deliberately narrow: a Solver is an opaque function from
// Problem (the Laplacian) to Solution (X and the bound). Anything satisfying
// the contract plugs into the pipeline — the cvx backend, a fixture solver
// in tests, or an external system bridged by the caller.
//
// Contract guarantees and failure modes of the collaborator:
//
//   - On success, X is symmetric PSD with unit diagonal within the solver's
//     tolerance. Callers re-check with Verify before trusting it; the
//     pipeline never silently substitutes a default on failure.
//   - ErrInfeasible: the backend reports the problem infeasible or unbounded
//     (cannot happen for a valid Laplacian; indicates a malformed input).
//   - ErrNumericalFailure: the backend stopped without an optimal
//     certificate (iteration limit, numerical breakdown). Not retried
//     automatically.
//   - Verify failures: ErrDimensionMismatch, ErrAsymmetric,
//     ErrNotUnitDiagonal, ErrNotPSD.
//
// The cvx backend (NewCVXSolver) follows the classic CVXOPT mcsdp
// formulation: with w = −L/4 it solves the primal
//
//	minimize   𝟙ᵀ·y   subject to  w + diag(y) ⪰ 0
//
// whose dual is exactly the relaxation above (dual variable Z = X, dual
// objective −tr(w·Z) = ¼·⟨L, X⟩). The constraint matrix G = −diag(·) is
// applied as a custom linear operator and the KKT system is solved
// analytically per iteration, so no dense G is ever materialized.
// Solution.Bound is recomputed as ¼·⟨L, X⟩ from the returned X, making every
// backend interchangeable downstream.
package sdp
