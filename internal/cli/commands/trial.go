// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spdsolve/internal/config"
	"github.com/katalvlaran/spdsolve/internal/trial"
)

// NewTrialCommand creates the trial command.
func NewTrialCommand() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "trial",
		Short: "Run randomized solve round-trips and report outcome rates",
		Long: `Generate random SPD systems A = L·Lᵗ with known solutions x0, solve them
and classify each trial as solved, not positive-definite, or wrong solution.
Results are reproducible for a given --seed whatever the worker count.`,
		Example: `  spdsolve trial --count 10000 --max-size 8
  spdsolve trial --precision 1e-3 --output csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			rep, err := trial.Run(cmd.Context(), cfg.Trial, cfg.Precision, workers, logger)
			if err != nil {
				return err
			}

			rows := make([]table.Row, 0, 3)
			for _, o := range []trial.Outcome{trial.Solved, trial.NotSPD, trial.WrongSolution} {
				rows = append(rows, table.Row{o.String(), rep.Count(o), fmt.Sprintf("%.2f%%", 100*rep.Rate(o))})
			}
			renderTable(cmd.OutOrStdout(), cfg.Output, fmt.Sprintf("%d trials, precision %g", rep.Trials, cfg.Precision),
				table.Row{"outcome", "count", "rate"}, rows)

			return nil
		},
	}

	f := cmd.Flags()
	f.Int("count", config.DefaultTrialCount, "Number of trials")
	f.Int64("seed", config.DefaultTrialSeed, "Seed of the first trial")
	f.Int("max-size", config.DefaultTrialMaxSize, "Largest system size")
	f.Float64("range", config.DefaultTrialRange, "Largest magnitude of generated entries")
	f.Float64("resolution", config.DefaultTrialResolution, "Grid step of generated entries")
	f.Float64("tolerance", config.DefaultTrialTolerance, "Relative and absolute tolerance on x")
	f.IntVar(&workers, "workers", 0, "Concurrent trials (0 for GOMAXPROCS)")

	return cmd
}
