// SPDX-License-Identifier: MIT
// Package cholesky: sentinel error set and the pivot error type.
//
// Dimension problems are reported with matrix.ErrDimensionMismatch and nil
// inputs with matrix.ErrNilMatrix, so callers match one sentinel set across
// both packages.

package cholesky

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPositiveDefinite is returned when A is not symmetric within the
	// precision, or when a pivot falls below the precision during
	// decomposition (including after the square root). No partial result
	// accompanies it.
	ErrNotPositiveDefinite = errors.New("cholesky: matrix is not symmetric positive-definite within precision")

	// ErrInvalidPrecision is returned for a NaN, infinite or negative precision.
	ErrInvalidPrecision = errors.New("cholesky: precision must be finite and >= 0")

	// ErrInvalidBandwidth is returned by SolveBanded for a half-bandwidth < 1.
	ErrInvalidBandwidth = errors.New("cholesky: half-bandwidth must be >= 1")

	// ErrOutsideBand is returned when WithBandCheck is enabled and A holds a
	// non-zero entry outside the declared half-bandwidth.
	ErrOutsideBand = errors.New("cholesky: non-zero entry outside the declared band")
)

// PivotError describes the pivot that stopped a decomposition.
// It unwraps to ErrNotPositiveDefinite.
type PivotError struct {
	Column    int     // zero-based column of the rejected pivot
	Value     float64 // the rejected value (A[j][j] before, L[j][j] after the square root)
	Precision float64 // threshold in force
	AfterSqrt bool    // true when the square root produced the rejected value
}

// Error implements error.
func (e *PivotError) Error() string {
	stage := "pivot"
	if e.AfterSqrt {
		stage = "sqrt pivot"
	}

	return fmt.Sprintf("cholesky: %s %g at column %d below precision %g", stage, e.Value, e.Column, e.Precision)
}

// Unwrap lets errors.Is(err, ErrNotPositiveDefinite) match.
func (e *PivotError) Unwrap() error { return ErrNotPositiveDefinite }

// BandError describes the first entry found outside the declared band.
// It unwraps to ErrOutsideBand.
type BandError struct {
	Row, Col      int
	Value         float64
	HalfBandwidth int
}

// Error implements error.
func (e *BandError) Error() string {
	return fmt.Sprintf("cholesky: entry (%d,%d) = %g outside half-bandwidth %d", e.Row, e.Col, e.Value, e.HalfBandwidth)
}

// Unwrap lets errors.Is(err, ErrOutsideBand) match.
func (e *BandError) Unwrap() error { return ErrOutsideBand }
