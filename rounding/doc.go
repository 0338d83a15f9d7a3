// Package rounding implements the randomized hyperplane rounding of the
// Goemans–Williamson algorithm: factor the relaxed solution X ≈ T·Tᵀ, draw a
// random hyperplane through the origin, and assign each vertex the side its
// unit vector (row of T) falls on.
//
// Operations:
//
//   - Factor(X, ...):    PSD factor T via Cholesky with eigen-clip fallback.
//   - Hyperplane(n, rng): normal vector with i.i.d. N(0,1) coordinates.
//     Normalization is omitted on purpose — sign(T·v) is invariant under
//     positive scaling of v.
//   - Round(T, v):       x = sign(T·v) with the fixed tie-break sign(0) = +1,
//     so every entry is exactly −1 or +1.
//   - Best(L, X, ...):   k independent trials, keep the partition with the
//     largest cut weight ¼·xᵀLx.
//
// Determinism and parallelism:
//
//   - Every trial t derives its own RNG from the base seed (seed + t), so a
//     fixed seed reproduces every trial bit-for-bit and the best-of-k result
//     is non-decreasing in k.
//   - Trials share only read-only state (L and T); with WithParallelism(w)
//     they run on w goroutines, each writing its private result slot, and a
//     sequential max-scan picks the winner — parallel and sequential runs
//     select the identical partition.
//   - WithTarget(w) stops spending trials once a cut of weight ≥ w has been
//     found (a caller-imposed budget policy; the rounding math itself is
//     single-shot per trial).
//
// Errors (sentinel): ErrNilMatrix, ErrDimensionMismatch, ErrNilRand,
// ErrNoTrials; factorization failures surface matrix.ErrNotPSD /
// matrix.ErrEigenFailed unchanged, wrapped with operation context.
package rounding
