package sake

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/iroha-labs/palette-server/internal/metrics"
)

// DefaultDebounce is how long the file must stay quiet before a reload.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads a Catalog when its backing file changes.
//
// The parent directory is watched rather than the file itself, so editors
// that save by writing a temp file and renaming it over the original are
// still picked up.
type Watcher struct {
	catalog  *Catalog
	path     string
	debounce time.Duration
	logger   *slog.Logger

	fsw *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer

	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewWatcher creates a watcher for path. Call Start to begin watching.
func NewWatcher(catalog *Catalog, path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		catalog:  catalog,
		path:     abs,
		debounce: debounce,
		logger:   logger,
		fsw:      fsw,
		done:     make(chan struct{}),
	}, nil
}

// Start begins processing file events in the background.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.processEvents()
	w.logger.Info("watching sake catalog", "path", w.path)
}

// Stop ends watching and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()

		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
	})
	return err
}

// Shutdown implements do.Shutdownable.
func (w *Watcher) Shutdown() error {
	return w.Stop()
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("sake catalog watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}

	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		// A rename-over save is followed by a Create, which triggers the reload.
		w.logger.Debug("sake catalog file moved away", "path", w.path, "op", event.Op.String())
		return
	}

	if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
		w.scheduleReload()
	}
}

// scheduleReload (re)arms the debounce timer.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.done:
		return
	default:
	}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	if err := w.catalog.Reload(w.path); err != nil {
		metrics.SakeCatalogReloads.WithLabelValues("error").Inc()
		w.logger.Warn("sake catalog reload failed, keeping previous catalog",
			"path", w.path,
			"error", err,
		)
		return
	}

	metrics.SakeCatalogReloads.WithLabelValues("ok").Inc()
	w.logger.Info("sake catalog reloaded", "path", w.path, "count", w.catalog.Len())
}
