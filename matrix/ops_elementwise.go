// SPDX-License-Identifier: MIT

// Package matrix - element-wise comparisons and vector helpers.
//
// Purpose:
//   - Tolerance-based equality for matrices (AllClose) and vectors (VecAllClose).
//   - Small vector kernels used by residual checks (VecSub, VecNormInf).
//
// Numeric policy:
//   - Tolerances must be finite; negative tolerances are normalized to |tol|.
//   - |a-b| ≤ atol + rtol*|b| is the closeness relation; NaN is never close.

package matrix

import "math"

const (
	opAllClose    = "AllClose"
	opVecAllClose = "VecAllClose"
	opVecSub      = "VecSub"
)

// normalizeTolerances rejects NaN/Inf tolerances and folds negatives to |tol|.
func normalizeTolerances(rtol, atol float64) (float64, float64, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return 0, 0, ErrNaNInf
	}

	return math.Abs(rtol), math.Abs(atol), nil
}

// isClose reports |a-b| ≤ atol + rtol*|b|. The negated form keeps NaN "not close".
func isClose(a, b, rtol, atol float64) bool {
	return !(math.Abs(a-b) > atol+rtol*math.Abs(b)) && !math.IsNaN(a) && !math.IsNaN(b)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Errors:
//   - ErrNaNInf (bad tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !isClose(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !isClose(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// VecAllClose is AllClose for vectors of equal length.
//
// Errors:
//   - ErrNaNInf (bad tolerance), ErrNilMatrix (nil vector), ErrDimensionMismatch.
func VecAllClose(x, y []float64, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, matrixErrorf(opVecAllClose, err)
	}
	if err = ValidateVecLen(x, len(y)); err != nil {
		return false, matrixErrorf(opVecAllClose, err)
	}
	if y == nil {
		return false, matrixErrorf(opVecAllClose, ErrNilMatrix)
	}
	for i := range x {
		if !isClose(x[i], y[i], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

// VecSub returns a fresh vector x - y.
//
// Errors:
//   - ErrNilMatrix (nil vector), ErrDimensionMismatch (length mismatch).
func VecSub(x, y []float64) ([]float64, error) {
	if y == nil {
		return nil, matrixErrorf(opVecSub, ErrNilMatrix)
	}
	if err := ValidateVecLen(x, len(y)); err != nil {
		return nil, matrixErrorf(opVecSub, err)
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] - y[i]
	}

	return out, nil
}

// VecNormInf returns max_i |x[i]| (0 for an empty vector). NaN propagates.
func VecNormInf(x []float64) float64 {
	norm := 0.0
	for _, v := range x {
		if math.IsNaN(v) {
			return math.NaN()
		}
		if a := math.Abs(v); a > norm {
			norm = a
		}
	}

	return norm
}

// VecClone returns an independent copy of x (nil stays nil).
func VecClone(x []float64) []float64 {
	if x == nil {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)

	return out
}
