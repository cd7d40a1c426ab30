// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spdsolve/cholesky"
	"github.com/katalvlaran/spdsolve/internal/config"
	"github.com/katalvlaran/spdsolve/matrix"
)

// systemFile is the YAML layout read by the solve command.
type systemFile struct {
	A             [][]float64 `yaml:"a"`
	B             []float64   `yaml:"b"`
	HalfBandwidth int         `yaml:"half_bandwidth"`
}

// loadSystem decodes a system file and builds its matrix.
func loadSystem(path string) (*matrix.Dense, []float64, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, 0, err
	}
	var sys systemFile
	if err = yaml.Unmarshal(data, &sys); err != nil {
		return nil, nil, 0, fmt.Errorf("parse %s: %w", path, err)
	}
	a, err := matrix.NewDenseFrom(sys.A)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("%s: a: %w", path, err)
	}
	if sys.HalfBandwidth < 0 {
		return nil, nil, 0, fmt.Errorf("%s: half_bandwidth %d: %w", path, sys.HalfBandwidth, cholesky.ErrInvalidBandwidth)
	}

	return a, sys.B, sys.HalfBandwidth, nil
}

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	var (
		factor    bool
		bandCheck bool
	)

	cmd := &cobra.Command{
		Use:   "solve <system.yaml>",
		Short: "Solve A·x = b for a symmetric positive-definite A",
		Long: `Solve the linear system described by a YAML file:

  a: [[4, 2], [2, 5]]
  b: [6, 7]
  half_bandwidth: 0   # optional; 0 means dense

The global --precision is both the symmetry tolerance and the minimum pivot.`,
		Example: `  spdsolve solve system.yaml
  spdsolve solve system.yaml --factor --output markdown`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			a, b, hb, err := loadSystem(args[0])
			if err != nil {
				return err
			}

			opts := []cholesky.Option{cholesky.WithLogger(logger)}
			if factor {
				opts = append(opts, cholesky.WithFactor())
			}
			if bandCheck {
				opts = append(opts, cholesky.WithBandCheck())
			}
			if hb > 0 {
				opts = append(opts, cholesky.WithHalfBandwidth(hb))
			}
			logger.Debug("solving system", "file", args[0], "n", a.Rows(), "half_bandwidth", hb, "precision", cfg.Precision)

			res, err := cholesky.Solve(a, b, cfg.Precision, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderTable(out, cfg.Output, "solution", table.Row{"i", "x"}, vectorRows(res.X))
			if res.L != nil {
				header, rows := matrixRows(res.L)
				renderTable(out, cfg.Output, "factor L", header, rows)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&factor, "factor", false, "Also print the Cholesky factor L")
	cmd.Flags().BoolVar(&bandCheck, "band-check", false, "Verify that A has no entries outside half_bandwidth")

	return cmd
}
