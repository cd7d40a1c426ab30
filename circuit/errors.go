// SPDX-License-Identifier: MIT

package circuit

import "errors"

var (
	// ErrMalformed is returned when circuit text does not follow the format:
	// bad header, wrong field counts, unparsable or non-finite numbers.
	ErrMalformed = errors.New("circuit: malformed description")

	// ErrBadIncidence is returned for an incidence entry outside {-1, 0, 1}.
	ErrBadIncidence = errors.New("circuit: incidence entries must be -1, 0 or 1")

	// ErrZeroResistance is returned for a branch with R == 0.
	ErrZeroResistance = errors.New("circuit: branch resistance must be non-zero")

	// ErrInvalidMeshSize is returned by NewMesh for n < 1.
	ErrInvalidMeshSize = errors.New("circuit: mesh size must be >= 1")
)
