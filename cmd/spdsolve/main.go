// SPDX-License-Identifier: MIT

// Package main provides the spdsolve command.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/spdsolve/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
