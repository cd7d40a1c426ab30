// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"

	"github.com/katalvlaran/spdsolve/matrix"
)

const (
	// MeshBranchResistance is the resistance of every grid branch, in ohms.
	MeshBranchResistance = 1000.0

	// MeshSourceVoltage drives the far corner through a MeshBranchResistance
	// series resistor, in volts.
	MeshSourceVoltage = 1.0
)

// NewMesh builds a grid of 2n rows by n columns of nodes joined by
// MeshBranchResistance resistors. Node (row i, col j) has index i*n+j;
// node 0 is ground and is dropped from the incidence matrix. An extra
// branch connects the last node to ground through a MeshSourceVoltage
// source in series with MeshBranchResistance.
//
// Branch numbering: row i owns horizontal branches i*(2n-1)+j for j < n-1,
// then vertical branches i*(2n-1)+(n-1)+j up to row i+1. A branch leaves
// its west/south node (+1) and enters its east/north node (-1).
//
// It returns the description and the half-bandwidth n+1 of its nodal matrix.
//
// Errors:
//   - ErrInvalidMeshSize for n < 1.
func NewMesh(n int) (*Description, int, error) {
	if n < 1 {
		return nil, 0, fmt.Errorf("NewMesh(%d): %w", n, ErrInvalidMeshSize)
	}
	nodes := 2 * n * n
	grid := 2*n*(n-1) + (2*n-1)*n
	branches := grid + 1

	a, err := matrix.NewDense(nodes-1, branches)
	if err != nil {
		return nil, 0, fmt.Errorf("NewMesh(%d): %w", n, err)
	}
	raw := a.Raw()
	stride := 2*n - 1
	var node, i, j, row int
	for node = 1; node < nodes; node++ {
		i, j = node/n, node%n
		row = (node - 1) * branches
		if i > 0 {
			raw[row+(i-1)*stride+(n-1)+j] = -1 // south
		}
		if j > 0 {
			raw[row+i*stride+j-1] = -1 // west
		}
		if j < n-1 {
			raw[row+i*stride+j] = 1 // east
		}
		if i < 2*n-1 {
			raw[row+i*stride+(n-1)+j] = 1 // north
		}
	}
	raw[(nodes-2)*branches+grid] = -1 // source branch on the last node

	cur := make([]float64, branches)
	res := make([]float64, branches)
	volt := make([]float64, branches)
	for j = range res {
		res[j] = MeshBranchResistance
	}
	volt[grid] = MeshSourceVoltage

	return &Description{incidence: a, current: cur, resist: res, voltage: volt}, n + 1, nil
}

// MeshResistance returns the resistance between ground and the far corner
// of a NewMesh grid, given its solved node voltages: the source sees the
// series resistor and the grid as a divider, R = Rs·V/(Vs − V).
//
// Errors:
//   - matrix.ErrDimensionMismatch for an empty voltage vector.
func MeshResistance(v []float64) (float64, error) {
	if len(v) == 0 {
		return 0, fmt.Errorf("MeshResistance: %w", matrix.ErrDimensionMismatch)
	}
	last := v[len(v)-1]

	return MeshBranchResistance * last / (MeshSourceVoltage - last), nil
}
