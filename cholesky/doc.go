// SPDX-License-Identifier: MIT

// Package cholesky solves A·x = b for real symmetric positive-definite A by
// Cholesky factorization A = L·Lᵗ, followed by forward elimination (L·y = b)
// and back substitution (Lᵗ·x = y).
//
// # Entry points
//
//   - Solve / SolveBanded: one-shot validated solve over private copies of
//     the inputs. Options select the banded kernel (WithHalfBandwidth), hand
//     the factor to the caller (WithFactor), verify the band precondition
//     (WithBandCheck) and route debug diagnostics (WithLogger).
//   - Factorize: validated factorization reused across right-hand sides via
//     (*Factor).SolveVec.
//   - Decompose, DecomposeBanded, ForwardEliminate, BackSubstitute: the raw
//     in-place kernels over a caller-owned *matrix.Dense. No symmetry check.
//
// # Precision
//
// precision is the pivot/symmetry tolerance, supplied per call with no
// package default. It bounds |A[i][j]-A[j][i]| and is the minimum accepted
// pivot, both before and after the square root. Zero is the strict variant.
//
// The value is a dial. Too tight, and numerically marginal but genuinely SPD
// matrices are rejected with ErrNotPositiveDefinite. Too loose, and
// near-singular matrices are accepted, with round-off amplified into x.
// Pick it relative to the scale of A: 1e-9 suits entries of order 1..100.
//
// # Banded systems
//
// With half-bandwidth hb, column j eliminates only rows [j+1, min(j+hb, n)),
// cutting the cost from O(n^3) to O(n*hb^2). A must satisfy A[i][j] == 0
// whenever |i-j| >= hb. That precondition is trusted by default; a violated
// one yields a wrong answer without an error. WithBandCheck inspects the
// out-of-band lower triangle first and fails with ErrOutsideBand instead.
// hb = 1 means a diagonal matrix; hb >= n is the dense path.
//
// # Errors
//
// Every failure is an error value. Shape problems wrap
// matrix.ErrDimensionMismatch; asymmetry and rejected pivots wrap
// ErrNotPositiveDefinite (a *PivotError carries the failing column). No
// partial result accompanies an error.
//
// # Concurrency
//
// Calls are synchronous and share no mutable state. Inputs are only read,
// so concurrent solves over distinct or shared read-only inputs are safe.
// Mutating an input during a solve that reads it is a caller bug.
package cholesky
