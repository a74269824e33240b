// Package main provides the entry point for the bookshelf CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/bookshelf/cmd/bookshelf/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Interrupts cancel the context so watch and other blocking commands
	// can return cleanly.
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		cancel()
		app.ExitOnError(err)
	}
}
