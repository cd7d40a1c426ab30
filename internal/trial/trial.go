// SPDX-License-Identifier: MIT

// Package trial runs randomized round-trip checks of the Cholesky solver.
//
// Each trial draws a size n, a lower-triangular L and a solution x0 from a
// quantised grid, forms A = L·Lᵗ and b = A·x0, solves A·x = b and compares
// x with x0. Trial i uses its own generator seeded with Seed+i, so a run is
// reproducible regardless of worker count or scheduling.
package trial

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spdsolve/cholesky"
	"github.com/katalvlaran/spdsolve/internal/config"
	"github.com/katalvlaran/spdsolve/matrix"
)

// Outcome classifies one trial.
type Outcome int

const (
	// Solved means x matched x0 within tolerance.
	Solved Outcome = iota
	// NotSPD means the solver rejected A as not positive-definite.
	NotSPD
	// WrongSolution means the solver succeeded but x differs from x0.
	WrongSolution
)

// String returns the outcome label used in reports.
func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case NotSPD:
		return "not positive-definite"
	case WrongSolution:
		return "wrong solution"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Report counts trial outcomes.
type Report struct {
	Trials        int
	Solved        int
	NotSPD        int
	WrongSolution int
}

// Count returns the number of trials that ended with o.
func (r Report) Count(o Outcome) int {
	switch o {
	case Solved:
		return r.Solved
	case NotSPD:
		return r.NotSPD
	case WrongSolution:
		return r.WrongSolution
	}

	return 0
}

// Rate returns the fraction of trials that ended with o.
func (r Report) Rate(o Outcome) float64 {
	if r.Trials == 0 {
		return 0
	}

	return float64(r.Count(o)) / float64(r.Trials)
}

// Run executes cfg.Count trials with at most workers in flight; workers < 1
// means GOMAXPROCS. It stops early only on ctx cancellation or an error that
// is not a positive-definiteness rejection.
func Run(ctx context.Context, cfg config.TrialConfig, precision float64, workers int, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	var solved, notSPD, wrong atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < cfg.Count; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o, err := One(rand.New(rand.NewSource(cfg.Seed+int64(i))), cfg, precision)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			switch o {
			case Solved:
				solved.Add(1)
			case NotSPD:
				notSPD.Add(1)
			case WrongSolution:
				wrong.Add(1)
			}
			if o != Solved {
				logger.Debug("trial failed", "trial", i, "outcome", o.String())
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	rep := Report{
		Trials:        cfg.Count,
		Solved:        int(solved.Load()),
		NotSPD:        int(notSPD.Load()),
		WrongSolution: int(wrong.Load()),
	}
	logger.Info("trials complete", "trials", rep.Trials, "solved", rep.Solved, "not_spd", rep.NotSPD, "wrong", rep.WrongSolution)

	return rep, nil
}

// One runs a single trial drawing everything from rng.
func One(rng *rand.Rand, cfg config.TrialConfig, precision float64) (Outcome, error) {
	lo := min(2, cfg.MaxSize)
	n := lo + rng.Intn(cfg.MaxSize-lo+1)

	l, err := matrix.RandomLowerTriangular(rng, n, cfg.Range, cfg.Resolution)
	if err != nil {
		return 0, err
	}
	x0, err := matrix.RandomVector(rng, n, cfg.Range, cfg.Resolution)
	if err != nil {
		return 0, err
	}
	a, err := matrix.Gram(l)
	if err != nil {
		return 0, err
	}
	b, err := matrix.MatVec(a, x0)
	if err != nil {
		return 0, err
	}

	res, err := cholesky.Solve(a, b, precision)
	if errors.Is(err, cholesky.ErrNotPositiveDefinite) {
		return NotSPD, nil
	}
	if err != nil {
		return 0, err
	}

	ok, err := matrix.VecAllClose(res.X, x0, cfg.Tolerance, cfg.Tolerance)
	if err != nil {
		return 0, err
	}
	if !ok {
		return WrongSolution, nil
	}

	return Solved, nil
}
