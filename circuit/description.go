// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spdsolve/cholesky"
	"github.com/katalvlaran/spdsolve/matrix"
)

const (
	opNew          = "NewDescription"
	opNodalSystem  = "NodalSystem"
	opNodeVoltages = "NodeVoltages"
)

// Description is a linear resistive circuit in reduced-incidence form.
// Build one with NewDescription, Parse or NewMesh; it is read-only after.
type Description struct {
	incidence *matrix.Dense // nodes × branches, entries in {-1, 0, 1}
	current   []float64     // J, per branch
	resist    []float64     // R, per branch, non-zero
	voltage   []float64     // E, per branch
}

// NewDescription validates and copies the parts of a circuit.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (vector lengths must
//     equal the branch count), ErrBadIncidence, ErrZeroResistance,
//     ErrMalformed (non-finite source or resistance).
func NewDescription(incidence matrix.Matrix, j, r, e []float64) (*Description, error) {
	if err := matrix.ValidateNotNil(incidence); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	a, err := matrix.DenseCopyOf(incidence)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	branches := a.Cols()
	for _, v := range [][]float64{j, r, e} {
		if err = matrix.ValidateVecLen(v, branches); err != nil {
			return nil, fmt.Errorf("%s: %w", opNew, err)
		}
	}

	var bad error
	a.Do(func(row, col int, v float64) bool {
		if v != -1 && v != 0 && v != 1 {
			bad = fmt.Errorf("%s: node %d branch %d = %g: %w", opNew, row+1, col, v, ErrBadIncidence)
			return false
		}
		return true
	})
	if bad != nil {
		return nil, bad
	}

	var k int
	for k = 0; k < branches; k++ {
		if err = checkBranch(k, j[k], r[k], e[k]); err != nil {
			return nil, fmt.Errorf("%s: %w", opNew, err)
		}
	}

	return &Description{
		incidence: a,
		current:   matrix.VecClone(j),
		resist:    matrix.VecClone(r),
		voltage:   matrix.VecClone(e),
	}, nil
}

// checkBranch validates one J/R/E triple.
func checkBranch(k int, j, r, e float64) error {
	for _, v := range []float64{j, r, e} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("branch %d: non-finite value: %w", k, ErrMalformed)
		}
	}
	if r == 0 {
		return fmt.Errorf("branch %d: %w", k, ErrZeroResistance)
	}

	return nil
}

// Nodes returns the number of non-ground nodes.
func (d *Description) Nodes() int { return d.incidence.Rows() }

// Branches returns the number of branches.
func (d *Description) Branches() int { return d.incidence.Cols() }

// Incidence returns a copy of the reduced incidence matrix.
func (d *Description) Incidence() *matrix.Dense {
	return d.incidence.Clone().(*matrix.Dense)
}

// Branch returns the current source, resistance and voltage source of branch k.
func (d *Description) Branch(k int) (j, r, e float64, err error) {
	if k < 0 || k >= d.Branches() {
		return 0, 0, 0, fmt.Errorf("Branch(%d): %w", k, matrix.ErrOutOfRange)
	}

	return d.current[k], d.resist[k], d.voltage[k], nil
}

// NodalSystem assembles M = A·Y·Aᵗ and b = A·(J − Y·E).
// Y is never materialised: A's columns are scaled by 1/R directly.
//
// Complexity: O(nodes² · branches) worst case, far less for sparse A.
func (d *Description) NodalSystem() (*matrix.Dense, []float64, error) {
	branches := d.Branches()
	y := make([]float64, branches)
	ye := make([]float64, branches)
	var k int
	for k = 0; k < branches; k++ {
		y[k] = 1 / d.resist[k]
		ye[k] = y[k] * d.voltage[k]
	}

	ay := d.Incidence()
	if err := ay.Apply(func(_, col int, v float64) float64 { return v * y[col] }); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opNodalSystem, err)
	}
	at, err := matrix.Transpose(d.incidence)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opNodalSystem, err)
	}
	m, err := matrix.Mul(ay, at)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opNodalSystem, err)
	}

	src, err := matrix.VecSub(d.current, ye)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opNodalSystem, err)
	}
	b, err := matrix.MatVec(d.incidence, src)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opNodalSystem, err)
	}

	return m.(*matrix.Dense), b, nil
}

// NodeVoltages solves the nodal system for the voltage of every non-ground
// node, in node order. opts are passed to cholesky.Solve, so a banded
// circuit can be solved with cholesky.WithHalfBandwidth.
//
// A circuit with a node unconnected to ground yields a singular M and
// cholesky.ErrNotPositiveDefinite.
func (d *Description) NodeVoltages(precision float64, opts ...cholesky.Option) ([]float64, error) {
	m, b, err := d.NodalSystem()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNodeVoltages, err)
	}
	res, err := cholesky.Solve(m, b, precision, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNodeVoltages, err)
	}

	return res.X, nil
}
