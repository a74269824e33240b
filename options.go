package bookshelf

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/logging"
	"github.com/agentstation/bookshelf/pkg/persistence"
)

// Option is a function that configures a Client.
type Option func(*options)

// options holds the configuration for a Client.
type options struct {
	libraryPath string
	store       persistence.Store
	rules       books.Rules
	logger      *zerolog.Logger
	clock       func() time.Time
	newID       func() (books.ID, error)
}

// defaults returns the default configuration.
func defaults() *options {
	return &options{
		libraryPath: constants.DefaultLibraryFile,
		rules:       books.DefaultRules(),
		logger:      logging.Default(),
		clock:       time.Now,
		newID:       books.NewID,
	}
}

// apply applies the given options and fills in derived settings.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	if o.rules.Now == nil {
		o.rules.Now = o.clock
	}
	if o.store == nil {
		o.store = persistence.NewJSONFile(o.libraryPath, persistence.WithLogger(o.logger))
	}
	return o
}

// WithLibraryPath sets the JSON library file. Ignored when WithStore is used.
func WithLibraryPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.libraryPath = path
		}
	}
}

// WithStore sets the durable store directly.
func WithStore(store persistence.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithMinYear sets the earliest accepted publication year.
func WithMinYear(year int) Option {
	return func(o *options) {
		if year > 0 {
			o.rules.MinYear = year
		}
	}
}

// WithFreeTextGenres accepts genres outside the enumerated set.
func WithFreeTextGenres(enabled bool) Option {
	return func(o *options) {
		o.rules.FreeTextGenres = enabled
	}
}

// WithClock sets the time source for added dates and the year ceiling.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
			o.rules.Now = clock
		}
	}
}

// WithIDGenerator overrides how new book IDs are made.
func WithIDGenerator(fn func() (books.ID, error)) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
