// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spdsolve/matrix"
	"github.com/stretchr/testify/require"
)

// onGrid reports whether v is a multiple of res within range.
func onGrid(v, rangeMax, res float64) bool {
	k := v / res

	return math.Abs(k-math.Round(k)) < 1e-9 && math.Abs(v) <= rangeMax+1e-12
}

func TestRandomVector(t *testing.T) {
	t.Parallel()

	x, err := matrix.RandomVector(rand.New(rand.NewSource(7)), 64, 10, 0.5)
	require.NoError(t, err)
	require.Len(t, x, 64)
	for _, v := range x {
		require.Truef(t, onGrid(v, 10, 0.5), "value %g off grid", v)
	}

	again, err := matrix.RandomVector(rand.New(rand.NewSource(7)), 64, 10, 0.5)
	require.NoError(t, err)
	require.Equal(t, x, again)
}

func TestRandomLowerTriangular(t *testing.T) {
	t.Parallel()

	const n = 12
	l, err := matrix.RandomLowerTriangular(rand.New(rand.NewSource(3)), n, 1, 1)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := MustAt(t, l, i, j)
			switch {
			case j > i:
				require.Zerof(t, v, "[%d,%d] above diagonal", i, j)
			case j == i:
				require.NotZerof(t, v, "[%d,%d] zero pivot", i, j)
			default:
				require.Truef(t, onGrid(v, 1, 1), "[%d,%d] = %g", i, j, v)
			}
		}
	}
}

func TestRandom_Errors(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	_, err := matrix.RandomVector(rng, 0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.RandomVector(rng, 2, 1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.RandomLowerTriangular(rng, 2, math.Inf(1), 1)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.RandomLowerTriangular(rng, 0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
