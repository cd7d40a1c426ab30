// SPDX-License-Identifier: MIT

// Package matrix - quantised random fills for test harnesses.
//
// Values are drawn uniformly from the grid {k*resolution : |k*resolution| ≤ rangeMax}.
// The caller owns the *rand.Rand, so sequences are reproducible per seed.

package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

const opRandom = "Random"

// randomGridValue draws one value from the quantised grid.
func randomGridValue(rng *rand.Rand, buckets int) int {
	return rng.Intn(buckets) - buckets/2
}

// gridBuckets validates the grid parameters and returns its bucket count.
func gridBuckets(rangeMax, resolution float64) (int, error) {
	if math.IsNaN(rangeMax) || math.IsInf(rangeMax, 0) || math.IsNaN(resolution) || math.IsInf(resolution, 0) {
		return 0, ErrNaNInf
	}
	if rangeMax <= 0 || resolution <= 0 || resolution > rangeMax {
		return 0, fmt.Errorf("range %g, resolution %g: %w", rangeMax, resolution, ErrBadShape)
	}

	return int(2*rangeMax/resolution + 1), nil
}

// RandomVector returns n values drawn from the quantised grid.
//
// Errors:
//   - ErrInvalidDimensions (n <= 0), ErrNaNInf / ErrBadShape (bad grid).
func RandomVector(rng *rand.Rand, n int, rangeMax, resolution float64) ([]float64, error) {
	if n <= 0 {
		return nil, matrixErrorf(opRandom, ErrInvalidDimensions)
	}
	buckets, err := gridBuckets(rangeMax, resolution)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(randomGridValue(rng, buckets)) * resolution
	}

	return x, nil
}

// RandomLowerTriangular returns an n×n lower-triangular matrix with entries
// from the quantised grid and a non-zero diagonal (a drawn zero is bumped to
// +resolution), so L·Lᵗ is symmetric positive-definite in exact arithmetic.
//
// Errors:
//   - ErrInvalidDimensions (n <= 0), ErrNaNInf / ErrBadShape (bad grid).
func RandomLowerTriangular(rng *rand.Rand, n int, rangeMax, resolution float64) (*Dense, error) {
	buckets, err := gridBuckets(rangeMax, resolution)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	L, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			k = randomGridValue(rng, buckets)
			if i == j && k == 0 {
				k = 1
			}
			L.data[i*n+j] = float64(k) * resolution
		}
	}

	return L, nil
}
