// SPDX-License-Identifier: MIT

package cholesky

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/spdsolve/matrix"
)

const (
	opSolve       = "Solve"
	opSolveBanded = "SolveBanded"
)

// Result is the outcome of a successful solve.
type Result struct {
	// X solves A·X = b.
	X []float64

	// L is the lower-triangular factor (upper triangle zeroed), set only when
	// WithFactor was given. The caller owns it.
	L *matrix.Dense
}

// Solve solves A·x = b for symmetric positive-definite a.
//
// precision is the pivot/symmetry tolerance: |A[i][j]-A[j][i]| must not
// exceed it, and every pivot (before and after its square root) must be at
// least it. Zero selects the strict variant (exact symmetry, pivots > 0).
//
// Implementation:
//   - Stage 1 (Validate): a square, len(b) == n, precision valid, a symmetric.
//   - Stage 2 (CopyInputs): private copies of a and b.
//   - Stage 3 (Decompose): dense, or banded under WithHalfBandwidth.
//   - Stage 4 (Solve): forward elimination, back substitution.
//   - Stage 5 (Finalize): under WithFactor, zero the working matrix's upper
//     triangle and return it as Result.L.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (shape or len(b)).
//   - ErrInvalidPrecision.
//   - ErrNotPositiveDefinite: asymmetry (also matches matrix.ErrAsymmetry)
//     or a rejected pivot (a *PivotError).
//   - ErrOutsideBand under WithBandCheck.
//
// Complexity: O(n^3) dense, O(n*hb^2) banded.
func Solve(a matrix.Matrix, b []float64, precision float64, opts ...Option) (*Result, error) {
	return solve(opSolve, a, b, precision, gatherOptions(opts...))
}

// SolveBanded is Solve with WithHalfBandwidth(halfBandwidth) applied after
// opts. a must satisfy a[i][j] == 0 whenever |i-j| >= halfBandwidth; this
// is trusted unless WithBandCheck is given.
//
// Errors: as Solve, plus ErrInvalidBandwidth for halfBandwidth < 1.
func SolveBanded(a matrix.Matrix, b []float64, precision float64, halfBandwidth int, opts ...Option) (*Result, error) {
	if halfBandwidth < 1 {
		return nil, fmt.Errorf("%s: %w", opSolveBanded, ErrInvalidBandwidth)
	}
	o := gatherOptions(opts...)
	o.halfBandwidth = halfBandwidth

	return solve(opSolveBanded, a, b, precision, o)
}

func solve(op string, a matrix.Matrix, b []float64, precision float64, o options) (*Result, error) {
	// Validate
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := validateSystem(a, precision); err != nil {
		o.logger.Debug("cholesky: input rejected", slog.String("op", op), slog.Any("err", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// CopyInputs + Decompose
	f, err := factorize(a, precision, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Solve
	x := matrix.VecClone(b)
	f.solveInPlace(x)

	// Finalize
	res := &Result{X: x}
	if o.wantFactor {
		f.l.ZeroUpper()
		res.L = f.l
	}

	return res, nil
}
