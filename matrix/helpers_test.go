// SPDX-License-Identifier: MIT

// Package matrix_test contains shared fixtures for the matrix tests.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/spdsolve/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type, forcing the At/Set
// fallback paths in kernels that special-case *Dense.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom builds a *Dense from literal rows or fails the test.
func MustFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireEqualDense compares m against want element by element.
func requireEqualDense(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())
	require.Equal(t, len(want[0]), m.Cols())
	for i := range want {
		for j := range want[i] {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "[%d,%d]", i, j)
		}
	}
}
