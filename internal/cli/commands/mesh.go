// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spdsolve/cholesky"
	"github.com/katalvlaran/spdsolve/circuit"
	"github.com/katalvlaran/spdsolve/internal/config"
)

// NewMeshCommand creates the mesh command.
func NewMeshCommand() *cobra.Command {
	var (
		dense bool
		emit  string
	)

	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Solve the 2N×N resistor mesh and report its resistance",
		Long: `Build a grid of 2N rows by N columns of 1 kΩ resistors, drive the far
corner with 1 V behind 1 kΩ, and report the corner-to-ground resistance.
The nodal matrix has half-bandwidth N+1 and is solved banded unless --dense.`,
		Example: `  spdsolve mesh --size 15
  spdsolve mesh --size 4 --emit mesh4.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())
			n := cfg.Mesh.Size

			d, hb, err := circuit.NewMesh(n)
			if err != nil {
				return err
			}
			if emit != "" {
				if err = writeCircuit(emit, d); err != nil {
					return err
				}
				logger.Info("wrote circuit", "file", emit)
			}

			opts := []cholesky.Option{cholesky.WithLogger(logger)}
			path := "dense"
			if !dense {
				opts = append(opts, cholesky.WithHalfBandwidth(hb))
				path = "banded"
			}
			start := time.Now()
			v, err := d.NodeVoltages(cfg.Precision, opts...)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)
			r, err := circuit.MeshResistance(v)
			if err != nil {
				return err
			}

			renderTable(cmd.OutOrStdout(), cfg.Output, "mesh",
				table.Row{"N", "nodes", "branches", "half-bandwidth", "path", "resistance (Ω)", "elapsed"},
				[]table.Row{{n, d.Nodes(), d.Branches(), hb, path, fmt.Sprintf("%.6f", r), elapsed.Round(time.Microsecond)}})

			return nil
		},
	}

	cmd.Flags().Int("size", config.DefaultMeshSize, "Mesh size N")
	cmd.Flags().BoolVar(&dense, "dense", false, "Use the dense decomposition")
	cmd.Flags().StringVar(&emit, "emit", "", "Also write the circuit file to this path")

	return cmd
}

// writeCircuit encodes d into a new file at path.
func writeCircuit(path string, d *circuit.Description) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = d.Encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
