// Package matrix: Dense storage (row-major) and safe accessors.
package matrix

import (
	"fmt"
	"math"
)

// Package-blessed numeric defaults. Kernels take tolerances as parameters;
// these constants are the single source of truth for callers that do not
// want to choose.
const (
	// DefaultEpsilon is the tolerance used by structural checks (symmetry,
	// unit diagonal, PSD pivots).
	DefaultEpsilon = 1e-9

	// DefaultEigenTol is the Jacobi convergence threshold on the largest
	// off-diagonal magnitude.
	DefaultEigenTol = 1e-10

	// DefaultEigenMaxIter caps the number of Jacobi rotations. Each rotation
	// is O(n), and small dense instances converge in a few sweeps.
	DefaultEigenMaxIter = 5000
)

// Dense is a row-major float64 matrix. Element (i, j) lives at data[i*c+j].
// The zero value is not usable; construct with NewDense.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates a zero-initialized r×c matrix.
// Returns ErrBadShape when r <= 0 or c <= 0.
func NewDense(r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", r, c, ErrBadShape)
	}

	return &Dense{r: r, c: c, data: make([]float64, r*c)}, nil
}

// NewDenseFrom allocates an r×c matrix initialized from the row-major slice
// data (copied). Returns ErrBadShape on a bad shape, ErrDimensionMismatch
// when len(data) != r*c, and ErrNaNInf on non-finite entries.
func NewDenseFrom(r, c int, data []float64) (*Dense, error) {
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	if len(data) != r*c {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): len(data)=%d: %w", r, c, len(data), ErrDimensionMismatch)
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("NewDenseFrom: data[%d]=%v: %w", i, v, ErrNaNInf)
		}
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns element (i, j). Returns ErrOutOfRange on invalid indices.
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set assigns element (i, j). Returns ErrOutOfRange on invalid indices and
// ErrNaNInf when v is not finite.
func (m *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Dense.Set(%d,%d)=%v: %w", i, j, v, ErrNaNInf)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Data returns the backing row-major slice without copying. Mutations through
// the slice are visible in the matrix; hot kernels in this package rely on it.
func (m *Dense) Data() []float64 { return m.data }

// Clone returns a deep copy, independent of the original.
func (m *Dense) Clone() *Dense {
	c := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(c.data, m.data)

	return c
}

// Identity returns the n×n identity matrix.
// Returns ErrBadShape when n <= 0.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrBadShape)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}
