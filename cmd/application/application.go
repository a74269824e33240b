// Package application provides the application interface for bookshelf
// commands.
//
// Commands accept this interface rather than the concrete App type so they
// can be exercised in tests with a Mock:
//
//	mock := &application.Mock{
//	    ClientFunc: func() (bookshelf.Client, error) {
//	        return bookshelf.New(bookshelf.WithStore(persistence.NewMemory()))
//	    },
//	}
//	cmd := list.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf"
)

// Application provides what commands need from the running program.
//
// All methods must be safe for concurrent access.
type Application interface {
	// Client returns the catalog client for the configured library file.
	// The client is created on first use and shared afterwards.
	Client() (bookshelf.Client, error)

	// Catalog returns the same client for commands that only read. An
	// unreadable library file yields an empty catalog rather than an error.
	Catalog() (bookshelf.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
