// SPDX-License-Identifier: MIT

package cholesky

import (
	"fmt"

	"github.com/katalvlaran/spdsolve/matrix"
)

const (
	opForward = "ForwardEliminate"
	opBack    = "BackSubstitute"
)

// forwardEliminate solves L y = b in place (b becomes y). Column-oriented:
// y[j] = b[j]/L[j][j], then b[i] -= L[i][j]*y[j] for rows inside the band.
func forwardEliminate(l []float64, n, hb int, b []float64) {
	var i, j, end int
	var yj float64
	for j = 0; j < n; j++ {
		yj = b[j] / l[j*n+j]
		b[j] = yj
		end = n
		if hb < n-j {
			end = j + hb
		}
		for i = j + 1; i < end; i++ {
			b[i] -= l[i*n+j] * yj
		}
	}
}

// backSubstitute solves Lᵗ x = y in place (y becomes x), walking L row by
// row from the bottom: x[i] = y[i]/L[i][i], then y[j] -= L[i][j]*x[i].
func backSubstitute(l []float64, n, hb int, y []float64) {
	var i, j, start, row int
	var xi float64
	for i = n - 1; i >= 0; i-- {
		row = i * n
		xi = y[i] / l[row+i]
		y[i] = xi
		start = 0
		if i-hb+1 > 0 {
			start = i - hb + 1
		}
		for j = start; j < i; j++ {
			y[j] -= l[row+j] * xi
		}
	}
}

// validateTriangular checks l square and v of matching length.
func validateTriangular(l *matrix.Dense, v []float64) error {
	if err := validateWorkspace(l); err != nil {
		return err
	}

	return matrix.ValidateVecLen(v, l.Rows())
}

// ForwardEliminate overwrites b with the solution y of L y = b, reading only
// the lower triangle (diagonal included) of l. A zero diagonal entry yields
// ±Inf/NaN; factors produced by Decompose never have one.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func ForwardEliminate(l *matrix.Dense, b []float64) error {
	if err := validateTriangular(l, b); err != nil {
		return fmt.Errorf("%s: %w", opForward, err)
	}
	n := l.Rows()
	forwardEliminate(l.Raw(), n, n, b)

	return nil
}

// BackSubstitute overwrites y with the solution x of Lᵗ x = y, reading only
// the lower triangle of l (Lᵗ is never formed).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func BackSubstitute(l *matrix.Dense, y []float64) error {
	if err := validateTriangular(l, y); err != nil {
		return fmt.Errorf("%s: %w", opBack, err)
	}
	n := l.Rows()
	backSubstitute(l.Raw(), n, n, y)

	return nil
}
