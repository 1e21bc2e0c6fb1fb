// Package watch re-runs a callback when a single file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/tabsum/pkg/log"
)

// Watcher observes one file and invokes a callback after it has been
// written or recreated. Bursts of events within the debounce delay collapse
// into a single call, and calls never overlap.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   log.Logger
	onChange func()

	mu    sync.Mutex
	timer *time.Timer

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Watcher for path. A nil logger discards messages.
func New(path string, debounce time.Duration, logger log.Logger, onChange func()) *Watcher {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		logger:   logger,
		onChange: onChange,
	}
}

// Start begins watching. The directory holding the file is watched rather
// than the file itself so that editors which replace the file on save are
// still observed. Start returns once the watch is registered.
func (w *Watcher) Start(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.logger.Info("watching for changes", log.String("path", w.path), log.Any("debounce", w.debounce))

	w.wg.Add(1)
	go w.loop(watchCtx, fw)
	return nil
}

// Stop ends the watch and waits for the event loop and any running callback.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	// A callback already started by the timer finishes before Stop returns.
	w.runMu.Lock()
	w.runMu.Unlock()
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fw.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("file changed", log.String("path", w.path), log.String("op", event.Op.String()))
			w.schedule(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		w.runMu.Lock()
		defer w.runMu.Unlock()
		w.onChange()
	})
}
