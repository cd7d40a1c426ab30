// SPDX-License-Identifier: MIT
// Package matrix: public constructors and thin facades.
//
// Purpose:
//   - Provide intention-revealing constructors (identity, diagonal, zeros).
//   - Avoid logic duplication: each facade delegates to the canonical kernel.

package matrix

import "fmt"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDiagonal returns the n×n matrix with d on its diagonal (n = len(d)).
// Values must be finite.
//
// Errors:
//   - ErrInvalidDimensions (empty d), ErrNaNInf (non-finite entry).
func NewDiagonal(d []float64) (*Dense, error) {
	n := len(d)
	D, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = D.Set(i, i, d[i]); err != nil {
			return nil, fmt.Errorf("NewDiagonal: %w", err)
		}
	}

	return D, nil
}

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// MatVecMul is an alias for MatVec: y = m·x.
func MatVecMul(m Matrix, x []float64) ([]float64, error) { return MatVec(m, x) }

// Gram returns m·mᵀ, the symmetric product used to build SPD test systems
// from a lower-triangular factor. Composition: Transpose → Mul.
// Complexity: O(r^2*c).
func Gram(m Matrix) (Matrix, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Gram", err)
	}
	g, err := Mul(m, mt)
	if err != nil {
		return nil, matrixErrorf("Gram", err)
	}

	return g, nil
}
