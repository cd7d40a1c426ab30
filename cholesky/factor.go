// SPDX-License-Identifier: MIT

package cholesky

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/spdsolve/matrix"
)

const (
	opFactorize = "Factorize"
	opSolveVec  = "SolveVec"
)

// Factor is a successful Cholesky factorization A = L·Lᵗ.
// It is immutable after Factorize returns, so one Factor may serve
// SolveVec calls from many goroutines.
type Factor struct {
	l  *matrix.Dense // lower triangle holds L; upper triangle is stale A
	n  int
	hb int // effective half-bandwidth in [1, n]
}

// Factorize validates a and computes its Cholesky factor without solving.
// Use it when several right-hand sides share one matrix.
//
// Implementation:
//   - Stage 1: a square (ErrDimensionMismatch), precision valid, a symmetric
//     within precision (ErrNotPositiveDefinite wrapping matrix.ErrAsymmetry).
//   - Stage 2: copy a into a private *Dense; a itself is never written.
//   - Stage 3: optional band check, then dense or banded decomposition.
//
// Options honoured: WithHalfBandwidth, WithBandCheck, WithLogger.
// WithFactor has no effect here; use (*Factor).L.
func Factorize(a matrix.Matrix, precision float64, opts ...Option) (*Factor, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opFactorize, err)
	}
	if err := validateSystem(a, precision); err != nil {
		o.logger.Debug("cholesky: input rejected", slog.String("op", opFactorize), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", opFactorize, err)
	}

	f, err := factorize(a, precision, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFactorize, err)
	}

	return f, nil
}

// validateSystem runs the precision and symmetry gates on a square a.
func validateSystem(a matrix.Matrix, precision float64) error {
	if err := validatePrecision(precision); err != nil {
		return err
	}
	if _, symmetric := matrix.IsSymmetric(a, precision); !symmetric {
		return fmt.Errorf("%w: %w", ErrNotPositiveDefinite, matrix.ErrAsymmetry)
	}

	return nil
}

// factorize is the CopyInputs + Decompose stage on pre-validated input.
// On failure the working copy is dropped; nothing partial escapes.
func factorize(a matrix.Matrix, precision float64, o options) (*Factor, error) {
	work, err := matrix.DenseCopyOf(a)
	if err != nil {
		return nil, err
	}
	n := work.Rows()
	hb := o.effectiveBandwidth(n)

	if o.bandCheck && hb < n {
		if err = verifyBand(work.Raw(), n, hb); err != nil {
			var be *BandError
			if errors.As(err, &be) {
				o.logger.Debug("cholesky: band violated",
					slog.Int("row", be.Row), slog.Int("col", be.Col),
					slog.Float64("value", be.Value), slog.Int("half_bandwidth", hb))
			}
			return nil, err
		}
	}

	if err = decompose(work.Raw(), n, hb, precision); err != nil {
		var pe *PivotError
		if errors.As(err, &pe) {
			o.logger.Debug("cholesky: pivot rejected",
				slog.Int("column", pe.Column), slog.Float64("value", pe.Value),
				slog.Float64("precision", pe.Precision), slog.Bool("after_sqrt", pe.AfterSqrt))
		}
		return nil, err
	}
	o.logger.Debug("cholesky: factorized", slog.Int("n", n), slog.Int("half_bandwidth", hb))

	return &Factor{l: work, n: n, hb: hb}, nil
}

// Size returns n, the order of the factored matrix.
func (f *Factor) Size() int { return f.n }

// HalfBandwidth returns the effective half-bandwidth; n means dense.
func (f *Factor) HalfBandwidth() int { return f.hb }

// L returns a fresh copy of the factor with its upper triangle zeroed.
func (f *Factor) L() *matrix.Dense {
	l := f.l.Clone().(*matrix.Dense)
	l.ZeroUpper()

	return l
}

// Det returns det(A) as the product of the squared pivots of L.
// Large systems may overflow to +Inf.
func (f *Factor) Det() float64 {
	raw := f.l.Raw()
	det := 1.0
	var j int
	for j = 0; j < f.n; j++ {
		d := raw[j*f.n+j]
		det *= d * d
	}

	return det
}

// SolveVec returns x with A·x = b, leaving b untouched.
//
// Errors:
//   - matrix.ErrNilMatrix (nil b), matrix.ErrDimensionMismatch (len(b) != n).
//
// Complexity: O(n*hb).
func (f *Factor) SolveVec(b []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(b, f.n); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveVec, err)
	}
	x := matrix.VecClone(b)
	f.solveInPlace(x)

	return x, nil
}

// solveInPlace runs forward elimination then back substitution on x.
func (f *Factor) solveInPlace(x []float64) {
	raw := f.l.Raw()
	forwardEliminate(raw, f.n, f.hb, x)
	backSubstitute(raw, f.n, f.hb, x)
}
