// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix: ..." for consistency and grepping.
// Algorithms return these sentinels (optionally wrapped with operation
// context via %w); tests branch with errors.Is. Panics are reserved for
// programmer errors in private helpers.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is
	// required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry beyond the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. MatVec with len(x) != cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotPSD indicates that a matrix required to be positive semidefinite
	// (within tolerance) is not: a Cholesky pivot or an eigenvalue fell below
	// the negative tolerance.
	ErrNotPSD = errors.New("matrix: matrix is not positive semidefinite within tolerance")

	// ErrEigenFailed indicates that the Jacobi sweep did not converge within
	// the iteration budget.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed to converge")

	// ErrGraphNil indicates that a nil *core.Graph was passed to an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrEmptyGraph indicates that the graph has no vertices, so no matrix
	// can be derived from it.
	ErrEmptyGraph = errors.New("matrix: graph has no vertices")
)
