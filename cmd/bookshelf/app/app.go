// Package app wires configuration, logging and the catalog client into
// the bookshelf CLI.
package app

import (
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// App represents the bookshelf application with all its dependencies.
type App struct {
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
	out    io.Writer

	// client is created on first use and shared afterwards
	mu         sync.RWMutex
	client     bookshelf.Client
	openErr    error
	clientOpts []bookshelf.Option
}

var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Client returns the catalog client, creating it on first use. A library
// file that exists but cannot be read is reported instead of being
// replaced by an empty catalog on the next save.
func (a *App) Client() (bookshelf.Client, error) {
	c, err := a.open()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Catalog returns the client for commands that only read. When the
// library file cannot be read it logs a warning and returns the empty
// catalog instead of failing.
func (a *App) Catalog() (bookshelf.Client, error) {
	c, err := a.open()
	if err == nil {
		return c, nil
	}
	if c == nil || !errors.IsPersistence(err) {
		return nil, err
	}
	a.logger.Warn().Err(err).Str("library", c.Path()).Msg("Library unreadable, showing an empty catalog")
	return c, nil
}

// open creates the client once and remembers the load error with it.
func (a *App) open() (bookshelf.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c, err := a.client, a.openErr
		a.mu.RUnlock()
		return c, err
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, a.openErr
	}

	c, err := bookshelf.New(a.clientOptions()...)
	if err != nil {
		a.logger.Error().Err(err).Str("library", a.config.Library).Msg("Failed to open library")
		if c == nil {
			return nil, err
		}
	} else {
		a.logger.Debug().
			Str("library", c.Path()).
			Int("books", c.Len()).
			Msg("Opened library")
	}

	a.client, a.openErr = c, err
	return c, err
}

func (a *App) clientOptions() []bookshelf.Option {
	opts := []bookshelf.Option{
		bookshelf.WithLibraryPath(a.config.Library),
		bookshelf.WithFreeTextGenres(a.config.FreeTextGenres),
		bookshelf.WithLogger(a.logger),
	}
	if a.config.MinYear > 0 {
		opts = append(opts, bookshelf.WithMinYear(a.config.MinYear))
	}
	return append(opts, a.clientOpts...)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if err := config.Validate(); err != nil {
			return err
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClientOptions appends options used when the client is created,
// after those derived from configuration.
func WithClientOptions(opts ...bookshelf.Option) Option {
	return func(a *App) error {
		a.clientOpts = append(a.clientOpts, opts...)
		return nil
	}
}

// WithOutput sends command output to w instead of standard output.
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.out = w
		return nil
	}
}
