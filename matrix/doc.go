// Package matrix provides the dense numeric layer of gwcut: row-major
// float64 storage, the graph→Laplacian adapter, and the factorization
// kernels the rounding stage depends on (Cholesky, Jacobi eigen, PSD repair).
//
// Overview:
//
//   - Dense is a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j. Public accessors At/Set return errors instead of
//     panicking; Set rejects NaN/±Inf (ErrNaNInf).
//   - NewLaplacian builds L from a core.Graph under the canonical sorted
//     vertex order: L[i][i] is the weighted degree of vertex i and
//     L[i][j] = −w(i, j) for i ≠ j. L is symmetric, positive semidefinite,
//     and every row sums to zero — the quadratic form ¼·xᵀLx is exactly the
//     weight of the cut induced by x ∈ {−1, +1}ⁿ.
//   - Kernels are deterministic: fixed loop orders, no map iteration, a
//     stable pivot scan in the Jacobi sweep. Identical inputs produce
//     identical outputs bit-for-bit.
//
// Factorization kernels:
//
//   - Cholesky(m, tol): lower-triangular T with m = T·Tᵀ. Fails with
//     ErrNotPSD when a pivot drops below tol — strictly positive-definite
//     input required; semidefinite input is handled one level up.
//   - EigenSym(m, tol, maxIter): eigenvalues and eigenvectors of a symmetric
//     matrix via Jacobi rotations with a deterministic max-off-diagonal
//     pivot. Fails with ErrEigenFailed when maxIter rotations do not reach
//     tol.
//   - FactorPSD(m, tol, maxIter): the factor used for hyperplane rounding.
//     Tries Cholesky first; on ErrNotPSD falls back to the eigen square
//     root, clipping eigenvalues in [−tol, 0) to zero. An eigenvalue below
//     −tol is fatal and surfaces as ErrNotPSD with the offending value.
//
// All tolerances are explicit parameters; DefaultEpsilon, DefaultEigenTol
// and DefaultEigenMaxIter are the package-blessed defaults, never baked
// into kernel bodies.
//
// Error handling (sentinel, matched via errors.Is):
//
//	ErrBadShape, ErrOutOfRange, ErrNilMatrix, ErrNaNInf, ErrNonSquare,
//	ErrAsymmetry, ErrDimensionMismatch, ErrNotPSD, ErrEigenFailed,
//	ErrGraphNil, ErrEmptyGraph.
package matrix
