// SPDX-License-Identifier: MIT

// Package circuit computes node voltages of linear resistive circuits with
// the node-voltage method, using the cholesky package as its solver.
//
// A circuit is described by its reduced incidence matrix A (nodes × branches,
// ground row removed, entries −1/0/+1), and per-branch current source J,
// resistance R and voltage source E. Kirchhoff's current law gives
//
//	(A·Y·Aᵗ)·V = A·(J − Y·E),   Y = diag(1/R)
//
// whose matrix is symmetric positive-definite for any connected circuit.
//
// Text format (one circuit per file):
//
//	<nodes> <branches>
//	<branches incidence values for node 1>     one line per node
//	...
//	<J> <R> <E>                                one line per branch
//	...
//
// NewMesh builds the 2N×N resistor grid used to exercise the banded solver;
// its nodal matrix has half-bandwidth N+1.
package circuit
