// SPDX-License-Identifier: MIT

package cholesky_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spdsolve/cholesky"
	"github.com/katalvlaran/spdsolve/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// toSym copies a into a gonum SymDense (upper triangle is read by gonum).
func toSym(t testing.TB, a matrix.Matrix) *mat.SymDense {
	t.Helper()
	n := a.Rows()
	data := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			data[i*n+j] = mustAt(t, a, i, j)
		}
	}

	return mat.NewSymDense(n, data)
}

// toSymBand copies the band of a (k super-diagonals) into a gonum SymBandDense.
func toSymBand(t testing.TB, a matrix.Matrix, k int) *mat.SymBandDense {
	t.Helper()
	n := a.Rows()
	stride := k + 1
	data := make([]float64, n*stride)
	var i, d int
	for i = 0; i < n; i++ {
		for d = 0; d <= k && i+d < n; d++ {
			data[i*stride+d] = mustAt(t, a, i, i+d)
		}
	}

	return mat.NewSymBandDense(n, k, data)
}

// TestFactorize_AgainstGonum cross-checks solutions and determinants with
// gonum's Cholesky on random SPD systems.
func TestFactorize_AgainstGonum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 40; trial++ {
		n := 1 + rng.Intn(10)
		a := randomSPD(t, rng, n)
		b, err := matrix.RandomVector(rng, n, 50, 0.5)
		require.NoError(t, err)

		f, err := cholesky.Factorize(a, testPrecision)
		require.NoError(t, err)
		require.Equal(t, n, f.Size())
		require.Equal(t, n, f.HalfBandwidth())
		x, err := f.SolveVec(b)
		require.NoError(t, err)

		var oracle mat.Cholesky
		require.True(t, oracle.Factorize(toSym(t, a)))
		var want mat.VecDense
		require.NoError(t, oracle.SolveVecTo(&want, mat.NewVecDense(n, matrix.VecClone(b))))

		for i := 0; i < n; i++ {
			require.InDeltaf(t, want.AtVec(i), x[i], 1e-9, "n=%d i=%d", n, i)
		}
		require.InEpsilon(t, oracle.Det(), f.Det(), 1e-9)
	}
}

// TestFactorize_BandedAgainstGonum cross-checks the banded kernel with
// gonum's BandCholesky on tridiagonal and pentadiagonal systems.
func TestFactorize_BandedAgainstGonum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		hb   int
		fill func(a *matrix.Dense, i, j int) float64
	}{
		{"tridiagonal", 12, 2, func(_ *matrix.Dense, i, j int) float64 {
			if i == j {
				return 4
			}
			return -1
		}},
		{"pentadiagonal", 15, 3, func(_ *matrix.Dense, i, j int) float64 {
			if i == j {
				return 10
			}
			return 1 / float64(1+i+j)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, err := matrix.NewDense(tc.n, tc.n)
			require.NoError(t, err)
			var i, j int
			for i = 0; i < tc.n; i++ {
				for j = 0; j < tc.n; j++ {
					if i-j < tc.hb && j-i < tc.hb {
						require.NoError(t, a.Set(i, j, tc.fill(a, i, j)))
					}
				}
			}
			b := make([]float64, tc.n)
			for i = range b {
				b[i] = float64(i%4) - 1.5
			}

			f, err := cholesky.Factorize(a, testPrecision, cholesky.WithHalfBandwidth(tc.hb), cholesky.WithBandCheck())
			require.NoError(t, err)
			require.Equal(t, tc.hb, f.HalfBandwidth())
			x, err := f.SolveVec(b)
			require.NoError(t, err)

			var oracle mat.BandCholesky
			require.True(t, oracle.Factorize(toSymBand(t, a, tc.hb-1)))
			var want mat.VecDense
			require.NoError(t, oracle.SolveVecTo(&want, mat.NewVecDense(tc.n, matrix.VecClone(b))))
			for i = 0; i < tc.n; i++ {
				require.InDelta(t, want.AtVec(i), x[i], 1e-12)
			}
		})
	}
}

// TestFactor_ReuseAndCopies checks many right-hand sides against one factor
// and that L() hands out an independent zeroed-upper copy.
func TestFactor_ReuseAndCopies(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]float64{{4, 2}, {2, 5}})
	f, err := cholesky.Factorize(a, 0, cholesky.WithFactor())
	require.NoError(t, err)
	require.Equal(t, 16.0, f.Det())

	l := f.L()
	require.Equal(t, []float64{2, 0, 1, 2}, l.Raw())
	require.NoError(t, l.Set(1, 1, -7))
	require.Equal(t, []float64{2, 0, 1, 2}, f.L().Raw())

	for _, tc := range []struct{ b, want []float64 }{
		{[]float64{4, 2}, []float64{1, 0}},
		{[]float64{2, 5}, []float64{0, 1}},
		{[]float64{6, 7}, []float64{1, 1}},
	} {
		b := matrix.VecClone(tc.b)
		x, err := f.SolveVec(b)
		require.NoError(t, err)
		require.Equal(t, tc.want, x)
		require.Equal(t, tc.b, b)
	}

	_, err = f.SolveVec([]float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = f.SolveVec(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFactorize_Errors mirrors Solve's validation without a right-hand side.
func TestFactorize_Errors(t *testing.T) {
	t.Parallel()

	rect, err := matrix.NewDense(3, 2)
	require.NoError(t, err)

	_, err = cholesky.Factorize(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = cholesky.Factorize((*matrix.Dense)(nil), 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = cholesky.Factorize(rect, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = cholesky.Factorize(mustDense(t, [][]float64{{1}}), -1)
	require.ErrorIs(t, err, cholesky.ErrInvalidPrecision)
	_, err = cholesky.Factorize(mustDense(t, [][]float64{{1, 2}, {3, 1}}), 0)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
	_, err = cholesky.Factorize(mustDense(t, [][]float64{{-1}}), 0)
	require.ErrorIs(t, err, cholesky.ErrNotPositiveDefinite)
}
