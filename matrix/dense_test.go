// Package matrix_test: Dense storage, accessors and elementary kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gwcut/matrix"
)

// mustDense builds a matrix from row-major data or fails the test.
func mustDense(t *testing.T, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// ------------------------------------------------------------------------
// 1. Construction and accessors.
// ------------------------------------------------------------------------

func TestNewDense_BadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNewDenseFrom_Validation(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestDense_CloneIndependent(t *testing.T) {
	m := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// ------------------------------------------------------------------------
// 2. Kernels.
// ------------------------------------------------------------------------

func TestMatVec(t *testing.T) {
	m := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	y, err := matrix.MatVec(m, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(m, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestQuadFormAndTrace(t *testing.T) {
	// Laplacian of a single unit edge: [[1,-1],[-1,1]].
	m := mustDense(t, 2, 2, []float64{1, -1, -1, 1})

	// Opposite signs: quadratic form 4 (edge is cut).
	q, err := matrix.QuadForm(m, []float64{1, -1})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, q, 1e-12)

	// Same sign: form 0 (edge not cut).
	q, err = matrix.QuadForm(m, []float64{1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, q, 1e-12)

	tr, err := matrix.Trace(m)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, tr, 1e-12)

	_, err = matrix.Trace(mustDense(t, 1, 2, []float64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInnerProduct(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustDense(t, 2, 2, []float64{5, 6, 7, 8})

	ip, err := matrix.InnerProduct(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 70.0, ip, 1e-12)

	_, err = matrix.InnerProduct(a, mustDense(t, 1, 2, []float64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// ------------------------------------------------------------------------
// 3. Validators.
// ------------------------------------------------------------------------

func TestValidateSymmetric(t *testing.T) {
	sym := mustDense(t, 2, 2, []float64{1, 2, 2, 1})
	require.NoError(t, matrix.ValidateSymmetric(sym, matrix.DefaultEpsilon))

	asym := mustDense(t, 2, 2, []float64{1, 2, 2.1, 1})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, matrix.DefaultEpsilon), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, 0.2), "loose tolerance must accept")
}
