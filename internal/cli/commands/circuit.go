// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spdsolve/cholesky"
	"github.com/katalvlaran/spdsolve/circuit"
	"github.com/katalvlaran/spdsolve/internal/config"
)

// NewCircuitCommand creates the circuit command.
func NewCircuitCommand() *cobra.Command {
	var halfBandwidth int

	cmd := &cobra.Command{
		Use:   "circuit <file>",
		Short: "Compute the node voltages of a resistive circuit",
		Long: `Parse a circuit file (node/branch header, reduced incidence matrix, one
"J R E" line per branch) and solve (A·Y·Aᵗ)·V = A·(J − Y·E) for the node
voltages.`,
		Example: `  spdsolve circuit divider.txt
  spdsolve circuit mesh.txt --half-bandwidth 11`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())
			if halfBandwidth < 0 {
				return fmt.Errorf("--half-bandwidth %d: %w", halfBandwidth, cholesky.ErrInvalidBandwidth)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			d, err := circuit.Parse(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			logger.Debug("parsed circuit", "file", args[0], "nodes", d.Nodes(), "branches", d.Branches())

			opts := []cholesky.Option{cholesky.WithLogger(logger)}
			if halfBandwidth > 0 {
				opts = append(opts, cholesky.WithHalfBandwidth(halfBandwidth))
			}
			v, err := d.NodeVoltages(cfg.Precision, opts...)
			if err != nil {
				return err
			}

			rows := make([]table.Row, len(v))
			for i, x := range v {
				rows[i] = table.Row{i + 1, formatFloat(x)}
			}
			renderTable(cmd.OutOrStdout(), cfg.Output, "node voltages", table.Row{"node", "volts"}, rows)

			return nil
		},
	}

	cmd.Flags().IntVar(&halfBandwidth, "half-bandwidth", 0, "Half-bandwidth of the nodal matrix (0 for dense)")

	return cmd
}
