// Package watch reloads a user catalog file when it changes on disk, so the
// browser picks up edits without a restart.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/toFrankie/url-scheme-collection/internal/catalog"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Stats tracks watcher activity for debugging.
type Stats struct {
	Events        int
	Reloads       int
	ParseFailures int
	LastEventTime time.Time
}

// CatalogWatcher watches a single catalog YAML file and delivers freshly
// parsed catalogs over Updates. The parent directory is watched rather than
// the file itself because editors commonly replace files via rename.
type CatalogWatcher struct {
	mu      sync.RWMutex
	watcher *fsnotify.Watcher
	path    string
	dir     string
	logger  *zap.Logger

	debounceDur time.Duration
	pendingAt   time.Time

	updates chan *catalog.Catalog
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool

	stats Stats
}

// NewCatalogWatcher creates a watcher for the given catalog file.
func NewCatalogWatcher(path string, logger *zap.Logger) (*CatalogWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &CatalogWatcher{
		watcher:     fw,
		path:        abs,
		dir:         filepath.Dir(abs),
		logger:      logger,
		debounceDur: 250 * time.Millisecond, // settle rapid editor saves
		updates:     make(chan *catalog.Catalog, 1),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Updates returns the channel on which reloaded catalogs are delivered.
// Only the newest catalog is kept if the consumer lags.
func (w *CatalogWatcher) Updates() <-chan *catalog.Catalog {
	return w.updates
}

// Start begins watching. Non-blocking; the event loop runs in a goroutine
// until Stop is called or the context is cancelled.
func (w *CatalogWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	w.logger.Info("watching catalog file", zap.String("path", w.path))

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *CatalogWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("error closing watcher", zap.Error(err))
	}
}

func (w *CatalogWatcher) run(ctx context.Context) {
	defer close(w.doneCh)

	debounceTicker := time.NewTicker(50 * time.Millisecond)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", zap.Error(err))

		case <-debounceTicker.C:
			w.processPending()
		}
	}
}

// handleEvent records a write/create/rename of the watched file for
// debounced processing.
func (w *CatalogWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	w.stats.Events++
	w.stats.LastEventTime = time.Now()
	w.pendingAt = time.Now()
	w.mu.Unlock()
}

// processPending reloads the catalog once events have settled past the
// debounce window.
func (w *CatalogWatcher) processPending() {
	w.mu.Lock()
	if w.pendingAt.IsZero() || time.Since(w.pendingAt) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.pendingAt = time.Time{}
	w.mu.Unlock()

	w.reload()
}

// reload parses the file and publishes the result. A parse failure keeps the
// consumer's previous catalog; the failure is only logged.
func (w *CatalogWatcher) reload() {
	c, err := catalog.LoadFile(w.path)
	if err != nil {
		w.logger.Warn("catalog reload failed, keeping previous", zap.Error(err))
		w.mu.Lock()
		w.stats.ParseFailures++
		w.mu.Unlock()
		return
	}

	w.mu.Lock()
	w.stats.Reloads++
	w.mu.Unlock()
	w.logger.Info("catalog reloaded",
		zap.Int("schemes", len(c.Schemes)),
		zap.Int("categories", len(c.Categories)))

	// Keep only the newest catalog if nobody is reading.
	select {
	case w.updates <- c:
	default:
		select {
		case <-w.updates:
		default:
		}
		w.updates <- c
	}
}

// GetStats returns a snapshot of the watcher statistics.
func (w *CatalogWatcher) GetStats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

// IsWatching reports whether the event loop is running.
func (w *CatalogWatcher) IsWatching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}
