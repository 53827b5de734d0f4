// Package main provides the entry point for the llamafi CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/llamafi/cmd/llamafi/app"
	"github.com/agentstation/llamafi/pkg/constants"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	// Create app instance
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	ctx, cancelTimeout := context.WithTimeout(ctx, constants.CommandTimeout)
	defer cancelTimeout()

	// Execute with context
	err = application.Execute(ctx, os.Args[1:])

	// Shutdown with a fresh context since the signal context may be cancelled
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer shutdownCancel()
	if shutdownErr := application.Shutdown(shutdownCtx); shutdownErr != nil {
		// Don't let a shutdown error mask the original error
		application.Logger().Error().Err(shutdownErr).Msg("Shutdown error")
	}

	if err != nil {
		cancelTimeout()
		cancel()
		app.ExitOnError(err)
	}
}
