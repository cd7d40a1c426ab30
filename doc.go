// Package spdsolve solves linear systems A·x = b whose matrix is symmetric
// and positive-definite, by Cholesky decomposition A = L·Lᵗ.
//
// 🚀 What is in the box?
//
//	A small, pure-Go solver plus the pieces around it:
//		• Dense Cholesky: factor in place, forward/back substitution
//		• Banded Cholesky: the same kernel restricted to a half-bandwidth
//		• Factor reuse: factor once, solve many right-hand sides
//		• Circuits: nodal analysis of resistive networks (A·Y·Aᵗ)·V = A·(J − Y·E)
//		• Trials: randomized round-trips over generated SPD systems
//
// ✨ Design notes
//
//   - One precision dial: it bounds both the symmetry check and the smallest
//     accepted pivot, so it trades tolerance of rounding against acceptance
//     of near-singular matrices.
//   - Explicit errors: failures are sentinel errors wrapped with context,
//     checked with errors.Is and errors.As.
//   - Inputs are never mutated; results own their memory.
//
// Packages:
//
//	matrix/    row-major Dense matrix, validators, products, random fills
//	cholesky/  Solve, SolveBanded, Factorize and the in-place kernels
//	circuit/   circuit descriptions, text format, the resistor-mesh generator
//	cmd/       the spdsolve command (solve, circuit, mesh, trial, version)
//
// Quick example:
//
//	    ┌ 4 2 ┐       ┌ 6 ┐
//	A = │     │ , b = │   │  ⇒  x = [1 1]
//	    └ 2 5 ┘       └ 7 ┘
//
//	a, _ := matrix.NewDenseFrom([][]float64{{4, 2}, {2, 5}})
//	res, err := cholesky.Solve(a, []float64{6, 7}, 1e-9)
//
//	go install github.com/katalvlaran/spdsolve/cmd/spdsolve@latest
package spdsolve
