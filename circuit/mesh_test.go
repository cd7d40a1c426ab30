// SPDX-License-Identifier: MIT

package circuit_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/katalvlaran/spdsolve/cholesky"
	"github.com/katalvlaran/spdsolve/circuit"
	"github.com/katalvlaran/spdsolve/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewMesh_Smallest checks the n = 1 grid against its text encoding and
// the obvious answer: one 1 kΩ branch to ground.
func TestNewMesh_Smallest(t *testing.T) {
	t.Parallel()

	d, hb, err := circuit.NewMesh(1)
	require.NoError(t, err)
	require.Equal(t, 2, hb)

	var buf bytes.Buffer
	require.NoError(t, d.Encode(&buf))
	require.Equal(t, "1 2\n-1 -1\n0 1000 0\n0 1000 1\n", buf.String())

	v, err := d.NodeVoltages(testPrecision)
	require.NoError(t, err)
	r, err := circuit.MeshResistance(v)
	require.NoError(t, err)
	require.InDelta(t, 1000, r, 1e-9)
}

// TestNewMesh_Structure checks counts and that every grid branch joins
// exactly two nodes (or one node and ground).
func TestNewMesh_Structure(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 5} {
		d, _, err := circuit.NewMesh(n)
		require.NoError(t, err)
		require.Equal(t, 2*n*n-1, d.Nodes())
		require.Equal(t, 2*n*(n-1)+(2*n-1)*n+1, d.Branches())

		a := d.Incidence()
		for k := 0; k < d.Branches(); k++ {
			plus, minus := 0, 0
			for i := 0; i < d.Nodes(); i++ {
				switch v, _ := a.At(i, k); v {
				case 1:
					plus++
				case -1:
					minus++
				}
			}
			require.LessOrEqualf(t, plus, 1, "n=%d branch %d", n, k)
			require.Equalf(t, 1, minus, "n=%d branch %d", n, k)
		}
	}
}

// TestNewMesh_BandedMatchesDense solves meshes both ways, with the band
// precondition verified, and checks the half-bandwidth is tight.
func TestNewMesh_BandedMatchesDense(t *testing.T) {
	t.Parallel()

	prev := 0.0
	for _, n := range []int{2, 3, 4, 6} {
		d, hb, err := circuit.NewMesh(n)
		require.NoError(t, err)

		dense, err := d.NodeVoltages(testPrecision)
		require.NoError(t, err)
		banded, err := d.NodeVoltages(testPrecision, cholesky.WithHalfBandwidth(hb), cholesky.WithBandCheck())
		require.NoError(t, err)
		ok, err := matrix.VecAllClose(banded, dense, 1e-12, 1e-12)
		require.NoError(t, err)
		require.Truef(t, ok, "n=%d", n)

		_, err = d.NodeVoltages(testPrecision, cholesky.WithHalfBandwidth(hb-1), cholesky.WithBandCheck())
		require.ErrorIs(t, err, cholesky.ErrOutsideBand, fmt.Sprintf("n=%d", n))

		// Corner-to-corner resistance of a grid lies between one branch and
		// the shortest path, and grows with the grid.
		r, err := circuit.MeshResistance(banded)
		require.NoError(t, err)
		require.Greater(t, r, circuit.MeshBranchResistance)
		require.Less(t, r, float64(3*n-1)*circuit.MeshBranchResistance)
		require.Greater(t, r, prev)
		prev = r
	}
}

// TestNewMesh_Errors covers the size guard and MeshResistance input.
func TestNewMesh_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := circuit.NewMesh(0)
	require.ErrorIs(t, err, circuit.ErrInvalidMeshSize)
	_, err = circuit.MeshResistance(nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
