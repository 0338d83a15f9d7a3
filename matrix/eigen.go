// Package matrix: symmetric eigen decomposition via Jacobi rotations.
package matrix

import (
	"fmt"
	"math"
)

const opEigen = "EigenSym"

// EigenSym computes eigenvalues and eigenvectors of a symmetric matrix via
// Jacobi sweeps.
//
// Each iteration picks the pair (p, q), p < q, with the largest |A[p][q]|
// (fixed i→j scan order, so results are deterministic) and applies a Givens
// rotation annihilating that entry. Convergence is declared once the largest
// off-diagonal magnitude drops below tol.
//
// Returns the eigenvalues (diagonal of the rotated matrix, index-aligned with
// the eigenvector columns of Q) and Q whose column k is the eigenvector for
// eigenvalue k.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare / ErrAsymmetry from validation.
//   - ErrEigenFailed when maxIter rotations do not reach tol.
//
// Complexity: O(maxIter·n²) for the pivot scans plus O(maxIter·n) updates;
// space O(n²).
func EigenSym(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, kernelErrorf(opEigen, err)
	}

	n := m.r
	a := m.Clone()
	q, err := Identity(n)
	if err != nil {
		return nil, nil, kernelErrorf(opEigen, err)
	}

	ad, qd := a.data, q.data

	converged := false
	for iter := 0; iter < maxIter; iter++ {
		// Deterministic pivot: largest off-diagonal magnitude, first in i→j order.
		maxOff := 0.0
		p, r := 0, 1
		for i := 0; i < n; i++ {
			base := i * n
			for j := i + 1; j < n; j++ {
				if off := math.Abs(ad[base+j]); off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}

		if maxOff < tol {
			converged = true
			break
		}

		app := ad[p*n+p]
		arr := ad[r*n+r]
		apr := ad[p*n+r]

		// Rotation angle: tan(2θ) = 2·apr / (app − arr).
		var t float64
		if diff := app - arr; math.Abs(apr) < math.Abs(diff)*1e-36 {
			t = apr / diff // tiny angle; avoids overflow in theta
		} else {
			theta := diff / (2 * apr)
			t = 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
			if theta < 0 {
				t = -t
			}
		}
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		// Update A: rows/columns p and r.
		for i := 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip := ad[i*n+p]
			air := ad[i*n+r]
			ad[i*n+p] = c*aip + s*air
			ad[p*n+i] = ad[i*n+p]
			ad[i*n+r] = c*air - s*aip
			ad[r*n+i] = ad[i*n+r]
		}
		ad[p*n+p] = app + t*apr
		ad[r*n+r] = arr - t*apr
		ad[p*n+r] = 0
		ad[r*n+p] = 0

		// Accumulate the rotation into Q.
		for i := 0; i < n; i++ {
			qip := qd[i*n+p]
			qir := qd[i*n+r]
			qd[i*n+p] = c*qip + s*qir
			qd[i*n+r] = c*qir - s*qip
		}
	}

	if !converged {
		return nil, nil, fmt.Errorf("%s: maxIter=%d: %w", opEigen, maxIter, ErrEigenFailed)
	}

	eig := make([]float64, n)
	for i := 0; i < n; i++ {
		eig[i] = ad[i*n+i]
	}

	return eig, q, nil
}
