// Package watch reports changes to a single file. It watches the parent
// directory so atomic replace-by-rename saves are seen, and coalesces
// bursts of events into one notification.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Event is delivered after the file settles.
type Event struct {
	Path    string
	Removed bool
	At      time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithSettleDelay sets how long the file must stay quiet before an
// Event is sent.
func WithSettleDelay(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.settle = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Watcher watches one file.
type Watcher struct {
	path   string
	settle time.Duration
	logger *zerolog.Logger
}

// New returns a Watcher for path.
func New(path string, opts ...Option) *Watcher {
	w := &Watcher{
		path:   filepath.Clean(path),
		settle: constants.WatchSettleDelay,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run blocks until ctx is done, calling fn once per settled change.
// fn runs on a single goroutine; calls never overlap.
func (w *Watcher) Run(ctx context.Context, fn func(Event)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.logger.Debug().Str("path", w.path).Dur("settle", w.settle).Msg("Watching library file")

	var (
		mu      sync.Mutex
		timer   *time.Timer
		removed bool
	)
	fire := make(chan Event, 1)

	schedule := func(isRemove bool) {
		mu.Lock()
		defer mu.Unlock()
		removed = isRemove
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.settle, func() {
			mu.Lock()
			ev := Event{Path: w.path, Removed: removed, At: time.Now()}
			mu.Unlock()
			select {
			case fire <- ev:
			default:
				// A notification is already queued; it will reflect this change.
			}
		})
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-fire:
			fn(ev)
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			switch {
			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				schedule(true)
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
				schedule(false)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Str("path", w.path).Msg("File watcher error")
		}
	}
}
