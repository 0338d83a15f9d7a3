// Package matrix: elementary kernels (MatVec, QuadForm, Trace, InnerProduct).
//
// All kernels use the central validators, operate on the flat data slice with
// fixed loop orders, and wrap failures with an operation tag.
package matrix

import "fmt"

// Operation tags for unified error wrapping.
const (
	opMatVec   = "MatVec"
	opQuadForm = "QuadForm"
	opTrace    = "Trace"
	opInner    = "InnerProduct"
)

// kernelErrorf wraps a non-nil err with an operation tag, preserving the
// sentinel for errors.Is.
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, kernelErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, kernelErrorf(opMatVec, err)
	}

	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		acc := 0.0
		base := i * m.c
		for j := 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// QuadForm computes the scalar xᵀ·m·x for a square m.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
func QuadForm(m *Dense, x []float64) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, kernelErrorf(opQuadForm, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return 0, kernelErrorf(opQuadForm, err)
	}

	total := 0.0
	n := m.c
	for i := 0; i < n; i++ {
		base := i * n
		row := 0.0
		for j := 0; j < n; j++ {
			row += m.data[base+j] * x[j]
		}
		total += x[i] * row
	}

	return total, nil
}

// Trace computes the sum of diagonal entries of a square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, kernelErrorf(opTrace, err)
	}

	total := 0.0
	for i := 0; i < m.r; i++ {
		total += m.data[i*m.c+i]
	}

	return total, nil
}

// InnerProduct computes the Frobenius inner product ⟨a, b⟩ = Σ a[i][j]·b[i][j].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func InnerProduct(a, b *Dense) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, kernelErrorf(opInner, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, kernelErrorf(opInner, err)
	}
	if a.r != b.r || a.c != b.c {
		return 0, fmt.Errorf("%s: %dx%d vs %dx%d: %w", opInner, a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	total := 0.0
	for i := range a.data {
		total += a.data[i] * b.data[i]
	}

	return total, nil
}
