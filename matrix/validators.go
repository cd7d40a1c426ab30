// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry checks run O(n²) over one triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Numeric).

package matrix

import (
	"fmt"
	"math"
)

// zeroTol is the strict tolerance: exact equality is required.
const zeroTol = 0.0

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports a nil interface or a nil *Dense wrapped in one.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil or m is a nil *Dense. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch if not square.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is rejected with ErrNilMatrix.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks a, b non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateTolerance rejects NaN/±Inf and negative tolerances.
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < zeroTol {
		return validatorErrorf("ValidateTolerance", ErrNaNInf)
	}

	return nil
}

// ValidateSymmetric checks m is square and |A[i,j] - A[j,i]| ≤ tol for all i>j.
// tol == 0 is the strict variant (exact equality).
//
// Errors (in priority order):
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNaNInf (bad tol),
//     ErrAsymmetry (violation).
//
// Complexity: O(n^2), Space O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if err := ValidateTolerance(tol); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}

	square, symmetric := IsSymmetric(m, tol)
	if !square {
		// unreachable after ValidateSquare; kept so the two stay in lockstep
		return validatorErrorf("ValidateSymmetric", ErrDimensionMismatch)
	}
	if !symmetric {
		return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
	}

	return nil
}

// IsSymmetric reports whether m is square and, if so, whether every pair
// i > j satisfies |A[i,j] - A[j,i]| ≤ tol. A non-square (or nil) matrix
// reports square=false and symmetric=false; callers must not attempt a
// factorization in that case.
//
// The comparison is NaN-safe: a NaN on either side is asymmetric.
// Complexity: O(n^2) worst case; exits on the first violation.
func IsSymmetric(m Matrix, tol float64) (square, symmetric bool) {
	if isNil(m) || m.Rows() != m.Cols() {
		return false, false
	}
	n := m.Rows()

	// Dense fast-path: compare mirrored offsets in the flat buffer.
	if d, ok := m.(*Dense); ok {
		var i, j int
		for i = 1; i < n; i++ {
			for j = 0; j < i; j++ {
				if !(math.Abs(d.data[i*n+j]-d.data[j*n+i]) <= tol) {
					return true, false
				}
			}
		}

		return true, true
	}

	var (
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			if aij, err = m.At(i, j); err != nil {
				return true, false
			}
			if aji, err = m.At(j, i); err != nil {
				return true, false
			}
			if !(math.Abs(aij-aji) <= tol) {
				return true, false
			}
		}
	}

	return true, true
}
