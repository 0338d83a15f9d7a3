// Package matrix: central validators shared by all kernels.
//
// Every kernel validates through these helpers so error priority is uniform:
// nil → shape → symmetry → operand dimensions.
package matrix

import (
	"fmt"
	"math"
)

// ValidateNotNil rejects a nil matrix.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare rejects nil and non-square matrices.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric rejects nil, non-square, and matrices with
// |m[i][j] − m[j][i]| > tol for any pair (i, j).
func ValidateSymmetric(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateVecLen rejects a vector whose length differs from want.
func ValidateVecLen(x []float64, want int) error {
	if len(x) != want {
		return fmt.Errorf("vector len=%d want=%d: %w", len(x), want, ErrDimensionMismatch)
	}

	return nil
}
