// SPDX-License-Identifier: MIT

// Package cholesky - in-place decomposition kernels.
//
// Both kernels run the right-looking (outer-product) Cholesky recurrence over
// a row-major n×n buffer, overwriting its lower triangle with L. The upper
// triangle is never read or written.
//
// Complexity:
//   - dense:  O(n^3)
//   - banded: O(n*hb^2)

package cholesky

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spdsolve/matrix"
)

const (
	opDecompose       = "Decompose"
	opDecomposeBanded = "DecomposeBanded"
)

// pivotRejected reports whether p fails the positive-definiteness gate:
// p <= 0 always fails (NaN included), and p < precision fails when
// precision > 0.
func pivotRejected(p, precision float64) bool {
	return !(p > 0) || p < precision
}

// validatePrecision rejects NaN, ±Inf and negative precisions.
func validatePrecision(precision float64) error {
	if math.IsNaN(precision) || math.IsInf(precision, 0) || precision < 0 {
		return ErrInvalidPrecision
	}

	return nil
}

// decompose factors the row-major n×n buffer a in place.
// For column j the pivot is checked, square-rooted and re-checked; then rows
// i in [j+1, min(j+hb, n)) get L[i][j] = A[i][j]/L[j][j] and the trailing
// entries A[i][k], j < k <= i, are updated. hb == n is the dense recurrence.
func decompose(a []float64, n, hb int, precision float64) error {
	var (
		i, j, k, end int
		rowI, rowK   int
		pivot, ljj   float64
		lij          float64
	)
	for j = 0; j < n; j++ {
		pivot = a[j*n+j]
		if pivotRejected(pivot, precision) {
			return &PivotError{Column: j, Value: pivot, Precision: precision}
		}

		ljj = math.Sqrt(pivot)
		// round-off in the square root can push a marginal pivot under the gate
		if pivotRejected(ljj, precision) {
			return &PivotError{Column: j, Value: ljj, Precision: precision, AfterSqrt: true}
		}
		a[j*n+j] = ljj

		end = n
		if hb < n-j {
			end = j + hb
		}
		for i = j + 1; i < end; i++ {
			rowI = i * n
			lij = a[rowI+j] / ljj
			a[rowI+j] = lij
			for k = j + 1; k <= i; k++ {
				rowK = k * n
				a[rowI+k] -= lij * a[rowK+j]
			}
		}
	}

	return nil
}

// verifyBand returns a *BandError for the first lower-triangle entry with
// i-j >= hb that is not exactly zero. Row-major scan order.
func verifyBand(a []float64, n, hb int) error {
	var i, j int
	for i = hb; i < n; i++ {
		for j = 0; j <= i-hb; j++ {
			if v := a[i*n+j]; v != 0 {
				return &BandError{Row: i, Col: j, Value: v, HalfBandwidth: hb}
			}
		}
	}

	return nil
}

// validateWorkspace checks that l is a usable square factor buffer.
func validateWorkspace(l *matrix.Dense) error {
	if l == nil {
		return matrix.ErrNilMatrix
	}
	if err := matrix.ValidateSquare(l); err != nil {
		return err
	}

	return nil
}

// Decompose overwrites the lower triangle of l with the Cholesky factor of
// the symmetric matrix it holds. Only the lower triangle of l is read; the
// upper triangle is left untouched and is meaningless afterwards. Symmetry
// is NOT checked here (see Solve / Factorize for the validated path).
//
// On ErrNotPositiveDefinite (a *PivotError) l is left partially overwritten
// and must be discarded.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrInvalidPrecision,
//     ErrNotPositiveDefinite.
func Decompose(l *matrix.Dense, precision float64) error {
	if err := validateWorkspace(l); err != nil {
		return fmt.Errorf("%s: %w", opDecompose, err)
	}
	if err := validatePrecision(precision); err != nil {
		return fmt.Errorf("%s: %w", opDecompose, err)
	}
	n := l.Rows()

	return decompose(l.Raw(), n, n, precision)
}

// DecomposeBanded is Decompose restricted to a half-bandwidth hb: column j
// only eliminates rows [j+1, min(j+hb, n)). The caller guarantees that
// l[i][j] == 0 whenever |i-j| >= hb; the kernel never checks this, and a
// violated precondition yields a silently wrong factor.
//
// Errors:
//   - as Decompose, plus ErrInvalidBandwidth for hb < 1.
func DecomposeBanded(l *matrix.Dense, precision float64, hb int) error {
	if err := validateWorkspace(l); err != nil {
		return fmt.Errorf("%s: %w", opDecomposeBanded, err)
	}
	if err := validatePrecision(precision); err != nil {
		return fmt.Errorf("%s: %w", opDecomposeBanded, err)
	}
	if hb < 1 {
		return fmt.Errorf("%s: %w", opDecomposeBanded, ErrInvalidBandwidth)
	}
	n := l.Rows()
	if hb > n {
		hb = n
	}

	return decompose(l.Raw(), n, hb, precision)
}
