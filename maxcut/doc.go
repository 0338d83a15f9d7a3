// Package maxcut orchestrates the Goemans–Williamson approximation pipeline
// end to end:
//
//	graph ──▶ Laplacian ──▶ semidefinite relaxation ──▶ hyperplane rounding
//	                              (sdp.Solver)              (rounding.Best)
//
// MaxCut is the single entry point. It builds the Laplacian under the
// canonical sorted vertex order, solves the relaxation through the configured
// sdp.Solver (the interior-point backend by default), structurally verifies
// the returned X, rounds it with best-of-k hyperplane trials, and evaluates
// the winning partition:
//
//   - CutWeight   = ¼·xᵀLx          (weight crossing the partition)
//   - TotalWeight = Tr(L)/2         (sum of all edge weights)
//   - Bound       = ¼·⟨L, X⟩        (upper bound on the maximum cut)
//   - Ratio       = CutWeight/Bound (realized approximation quality)
//
// In expectation the ratio is at least α ≈ 0.878 for any input; a fixed seed
// makes every run reproducible, and raising WithTrials only improves the
// returned cut.
//
// The solver is injectable via WithSolver, so tests (or callers with their
// own SDP machinery) can swap the backend without touching the pipeline.
//
// Errors (sentinel): ErrNilGraph, ErrEmptyGraph; solver and rounding failures
// surface their own sentinels (sdp.ErrInfeasible, sdp.ErrNumericalFailure,
// matrix.ErrNotPSD, ...) wrapped with pipeline context.
package maxcut
