// SPDX-License-Identifier: MIT

// Package cholesky_test provides benchmarks for the dense and banded solve
// paths on deterministic tridiagonal and random SPD systems.
package cholesky_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spdsolve/cholesky"
)

// benchSizes are the system orders to benchmark.
var benchSizes = []int{64, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkX []float64
	sinkF *cholesky.Factor
)

func benchRHS(n int) []float64 {
	b := make([]float64, n)
	for i := range b {
		b[i] = float64(i%7) - 3
	}

	return b
}

func BenchmarkSolveDense(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := tridiagonal(b, n, 4, -1)
			rhs := benchRHS(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := cholesky.Solve(a, rhs, testPrecision)
				if err != nil {
					b.Fatal(err)
				}
				sinkX = res.X
			}
		})
	}
}

func BenchmarkSolveBanded(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := tridiagonal(b, n, 4, -1)
			rhs := benchRHS(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := cholesky.SolveBanded(a, rhs, testPrecision, 2)
				if err != nil {
					b.Fatal(err)
				}
				sinkX = res.X
			}
		})
	}
}

func BenchmarkFactorizeRandomSPD(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomSPD(b, rand.New(rand.NewSource(int64(n))), n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := cholesky.Factorize(a, testPrecision)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}

func BenchmarkFactorSolveVec(b *testing.B) {
	b.ReportAllocs()
	n := 512
	a := tridiagonal(b, n, 4, -1)
	f, err := cholesky.Factorize(a, testPrecision, cholesky.WithHalfBandwidth(2))
	if err != nil {
		b.Fatal(err)
	}
	rhs := benchRHS(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, err := f.SolveVec(rhs)
		if err != nil {
			b.Fatal(err)
		}
		sinkX = x
	}
}
