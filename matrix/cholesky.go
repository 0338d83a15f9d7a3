// Package matrix: Cholesky factorization and the PSD factor used by
// hyperplane rounding.
package matrix

import (
	"errors"
	"fmt"
	"math"
)

const (
	opCholesky  = "Cholesky"
	opFactorPSD = "FactorPSD"
)

// Cholesky computes the lower-triangular factor T with m = T·Tᵀ.
//
// The input must be symmetric within tol and strictly positive definite up to
// tol: a pivot below tol fails with ErrNotPSD (this includes singular PSD
// matrices — FactorPSD handles those through the eigen fallback).
//
// Complexity: O(n³) time, O(n²) space.
func Cholesky(m *Dense, tol float64) (*Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, kernelErrorf(opCholesky, err)
	}

	n := m.r
	t, err := NewDense(n, n)
	if err != nil {
		return nil, kernelErrorf(opCholesky, err)
	}
	md, td := m.data, t.data

	for j := 0; j < n; j++ {
		// Pivot: m[j][j] − Σ_{k<j} t[j][k]².
		pivot := md[j*n+j]
		for k := 0; k < j; k++ {
			pivot -= td[j*n+k] * td[j*n+k]
		}
		if pivot < tol {
			return nil, fmt.Errorf("%s: pivot %v at column %d below tol %v: %w",
				opCholesky, pivot, j, tol, ErrNotPSD)
		}
		diag := math.Sqrt(pivot)
		td[j*n+j] = diag

		// Column below the pivot.
		for i := j + 1; i < n; i++ {
			sum := md[i*n+j]
			for k := 0; k < j; k++ {
				sum -= td[i*n+k] * td[j*n+k]
			}
			td[i*n+j] = sum / diag
		}
	}

	return t, nil
}

// FactorPSD computes a factor T with m ≈ T·Tᵀ for a symmetric positive
// semidefinite m. This is the factorization contract of the rounding stage:
// row i of T is the unit-norm vector assigned to vertex i when diag(m) = 1.
//
// Strategy:
//  1. Try Cholesky (cheap, lower-triangular) — succeeds for positive
//     definite input.
//  2. On ErrNotPSD, fall back to the eigen square root: m = Q·Λ·Qᵀ,
//     T = Q·diag(√λ). Eigenvalues in [−tol, 0) — numerical noise from the
//     solver — are clipped to zero; an eigenvalue below −tol means m is
//     genuinely indefinite and surfaces as ErrNotPSD with the value.
//
// Errors: validation sentinels, ErrNotPSD (fatal indefiniteness),
// ErrEigenFailed (fallback did not converge within maxIter).
func FactorPSD(m *Dense, tol float64, maxIter int) (*Dense, error) {
	t, err := Cholesky(m, tol)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, ErrNotPSD) {
		return nil, kernelErrorf(opFactorPSD, err)
	}

	eig, q, err := EigenSym(m, tol, maxIter)
	if err != nil {
		return nil, kernelErrorf(opFactorPSD, err)
	}

	n := m.r
	for k, ev := range eig {
		if ev < -tol {
			return nil, fmt.Errorf("%s: eigenvalue %v below -tol %v: %w", opFactorPSD, ev, -tol, ErrNotPSD)
		}
		if ev < 0 {
			eig[k] = 0 // clip numerical noise in [-tol, 0)
		}
	}

	// T = Q·diag(√λ): scale each eigenvector column by √λ_k.
	t, err = NewDense(n, n)
	if err != nil {
		return nil, kernelErrorf(opFactorPSD, err)
	}
	td, qd := t.data, q.data
	for k := 0; k < n; k++ {
		root := math.Sqrt(eig[k])
		for i := 0; i < n; i++ {
			td[i*n+k] = qd[i*n+k] * root
		}
	}

	return t, nil
}
