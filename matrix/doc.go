// Package matrix offers the dense linear-algebra primitives used by the
// solvers in this module.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over a two-dimensional float64 array with
//     bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation with flat-slice fast paths.
//   - Kernels: Sub, Mul, Transpose, MatVec, Gram, AllClose and a few
//     vector helpers (VecSub, VecNormInf, VecAllClose).
//   - Validators: ValidateSquare, ValidateVecLen, ValidateSymmetric and
//     IsSymmetric, which reports non-square input separately from asymmetry.
//   - Quantised random generators for reproducible test harnesses.
//
// Every kernel returns a fresh result and never mutates its operands.
// Errors are package sentinels wrapped with an operation tag; match them
// with errors.Is.
package matrix
