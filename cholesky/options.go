// SPDX-License-Identifier: MIT

// Package cholesky: functional options for Solve, SolveBanded and Factorize.
//
// Design goals:
//   - One configurable contract instead of separate dense/banded/factor entry points.
//   - No global state; every call resolves its own options from defaults.
//   - Panic only on nonsensical option values (programmer error).

package cholesky

import (
	"fmt"
	"log/slog"
)

// Defaults (single source of truth).
const (
	// DefaultHalfBandwidth = 0 means "full": every sub-diagonal row is updated.
	DefaultHalfBandwidth = 0

	// DefaultWantFactor controls whether Solve hands the factor L to the caller.
	DefaultWantFactor = false

	// DefaultBandCheck leaves the band precondition unverified.
	DefaultBandCheck = false
)

const panicHalfBandwidthInvalid = "cholesky: WithHalfBandwidth: half-bandwidth must be >= 1, got %d"

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*options)

// options is the effective configuration of one call.
type options struct {
	halfBandwidth int          // 0 = dense
	wantFactor    bool         // expose L in Result
	bandCheck     bool         // verify zeros outside the band
	logger        *slog.Logger // never nil after gatherOptions
}

// WithFactor requests the lower-triangular factor L in Result.L, with its
// upper triangle zeroed. Ownership of L transfers to the caller.
func WithFactor() Option {
	return func(o *options) { o.wantFactor = true }
}

// WithHalfBandwidth selects the banded decomposition: for column j only rows
// [j+1, min(j+hb, n)) are eliminated. The caller guarantees A[i][j] == 0
// whenever |i-j| >= hb; entries outside the band are never inspected unless
// WithBandCheck is also given. hb >= n is equivalent to the dense path.
//
// Panics if hb < 1.
func WithHalfBandwidth(hb int) Option {
	if hb < 1 {
		panic(fmt.Sprintf(panicHalfBandwidthInvalid, hb))
	}

	return func(o *options) { o.halfBandwidth = hb }
}

// WithBandCheck verifies the band precondition before decomposing, turning a
// silently wrong factor into ErrOutsideBand. Costs one pass over the lower
// triangle outside the band. Has no effect on the dense path.
func WithBandCheck() Option {
	return func(o *options) { o.bandCheck = true }
}

// WithLogger routes debug diagnostics (rejected pivots, band violations) to l.
// A nil logger keeps the default discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies user setters on top of the defaults.
func gatherOptions(user ...Option) options {
	o := options{
		halfBandwidth: DefaultHalfBandwidth,
		wantFactor:    DefaultWantFactor,
		bandCheck:     DefaultBandCheck,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// effectiveBandwidth maps the option value onto [1, n]; 0 (dense) becomes n.
func (o options) effectiveBandwidth(n int) int {
	if o.halfBandwidth <= 0 || o.halfBandwidth > n {
		return n
	}

	return o.halfBandwidth
}
