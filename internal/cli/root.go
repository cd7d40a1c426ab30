// SPDX-License-Identifier: MIT

// Package cli provides the command-line interface for spdsolve.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spdsolve/internal/cli/commands"
	"github.com/katalvlaran/spdsolve/internal/config"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "spdsolve",
		Short: "spdsolve - Cholesky solver for symmetric positive-definite systems",
		Long: `spdsolve solves A·x = b for symmetric positive-definite A by Cholesky
decomposition, with a banded variant for matrices whose non-zeros lie near
the diagonal.

It reads linear systems and resistive circuits from files, builds the
resistor-mesh benchmark, and runs randomized round-trip trials.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, used, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if used != "" {
				logger.Debug("using config file", "path", used)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./spdsolve.yaml)")
	pf.Float64("precision", config.DefaultPrecision, "Symmetry tolerance and minimum accepted pivot")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.StringP("output", "o", config.DefaultOutput, "Output format (text|markdown|csv)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputMarkdown, config.OutputCSV}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewSolveCommand())
	rootCmd.AddCommand(commands.NewCircuitCommand())
	rootCmd.AddCommand(commands.NewMeshCommand())
	rootCmd.AddCommand(commands.NewTrialCommand())

	return rootCmd
}

// Execute runs the root command; cancelling ctx stops long-running commands.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
