// SPDX-License-Identifier: MIT

package cholesky_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spdsolve/matrix"
	"github.com/stretchr/testify/require"
)

// testPrecision is the pivot/symmetry tolerance used by most tests.
const testPrecision = 1e-9

// hide wraps a Matrix so code under test cannot take the *Dense fast path.
type hide struct{ matrix.Matrix }

// mustDense builds a *Dense from literal rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// mustAt reads m[i][j] or fails the test.
func mustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// randomSPD returns A = L·Lᵗ for a random well-conditioned lower-triangular L
// (off-diagonal entries in [-1, 1], diagonal in [2, 3]).
func randomSPD(t testing.TB, rng *rand.Rand, n int) *matrix.Dense {
	t.Helper()
	l, err := matrix.RandomLowerTriangular(rng, n, 1, 0.1)
	require.NoError(t, err)
	var i int
	for i = 0; i < n; i++ {
		d := mustAt(t, l, i, i)
		require.NoError(t, l.Set(i, i, 2+math.Abs(d)))
	}
	g, err := matrix.Gram(l)
	require.NoError(t, err)
	a, err := matrix.DenseCopyOf(g)
	require.NoError(t, err)

	return a
}

// tridiagonal returns the n×n SPD matrix with diag on the diagonal and off
// on both neighbouring diagonals (half-bandwidth 2).
func tridiagonal(t testing.TB, n int, diag, off float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	var i int
	for i = 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, diag))
		if i > 0 {
			require.NoError(t, m.Set(i, i-1, off))
			require.NoError(t, m.Set(i-1, i, off))
		}
	}

	return m
}

// residualInf returns ‖A·x − b‖∞.
func residualInf(t testing.TB, a matrix.Matrix, x, b []float64) float64 {
	t.Helper()
	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	r, err := matrix.VecSub(ax, b)
	require.NoError(t, err)

	return matrix.VecNormInf(r)
}

// requireSolves asserts ‖A·x − b‖∞ is within k·precision, scaled by ‖b‖∞.
func requireSolves(t testing.TB, a matrix.Matrix, x, b []float64) {
	t.Helper()
	const k = 100
	scale := math.Max(1, matrix.VecNormInf(b))
	res := residualInf(t, a, x, b)
	require.LessOrEqualf(t, res, k*testPrecision*scale, "residual %g too large", res)
}
