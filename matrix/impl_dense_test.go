// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spdsolve/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive
// dimensions and shapes whose element count overflows int.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(math.MaxInt/2+1, 3) // rows*cols overflows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(math.MaxInt, math.MaxInt)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZeroed verifies shape and zero-initialisation.
func TestNewDenseZeroed(t *testing.T) {
	m := MustDense(t, 3, 4)
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.Equal(t, make([]float64, 12), m.Raw())
}

func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := MustFrom(t, src)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Raw())

	// the literal is copied, not aliased
	src[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	tests := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{"no rows", nil, matrix.ErrBadShape},
		{"empty row", [][]float64{{}}, matrix.ErrBadShape},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrBadShape},
		{"NaN", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
		{"Inf", [][]float64{{math.Inf(-1)}}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDenseFrom(tc.rows)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.Contains(t, m.Set(2, 0, 1).Error(), "Dense.Set(2,0)")
}

// TestSetRejectsNonFinite checks the numeric policy on Set.
func TestSetRejectsNonFinite(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.Zero(t, MustAt(t, m, 0, 0)) // untouched
}

func TestCloneIndependence(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 42))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.IsType(t, &matrix.Dense{}, cp)
}

func TestDenseCopyOf(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	for name, src := range map[string]matrix.Matrix{"dense": m, "fallback": hide{m}} {
		cp, err := matrix.DenseCopyOf(src)
		require.NoError(t, err, name)
		require.Equal(t, m.Raw(), cp.Raw(), name)
		cp.Raw()[0] = -1
		require.Equal(t, 1.0, m.Raw()[0], name)
	}

	_, err := matrix.DenseCopyOf(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestZeroUpper(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	m.ZeroUpper()
	requireEqualDense(t, [][]float64{{1, 0, 0}, {4, 5, 0}, {7, 8, 9}}, m)
}

func TestString(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, -2.5}, {0, 1e-9}})
	require.Equal(t, "[1, -2.5]\n[0, 1e-09]\n", m.String())
}

// TestDoApply covers row-major visiting, early stop and the Apply numeric policy.
func TestDoApply(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3 // stop after visiting 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * float64(i+j+1) }))
	require.Equal(t, []float64{1, 4, 6, 12}, m.Raw())

	err := m.Apply(func(i, _ int, v float64) float64 {
		if i == 1 {
			return math.Inf(1)
		}
		return -v
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, []float64{-1, -4, 6, 12}, m.Raw()) // first row already updated
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	requireEqualDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	d, err := matrix.NewDiagonal([]float64{2, -3})
	require.NoError(t, err)
	requireEqualDense(t, [][]float64{{2, 0}, {0, -3}}, d)

	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	require.Equal(t, make([]float64, 6), z.Raw())

	_, err = matrix.NewDiagonal(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDiagonal([]float64{math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
