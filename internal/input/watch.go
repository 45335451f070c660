package input

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Change is a reloaded file.
type Change struct {
	Path string
	Text string
	Err  error
}

// WatcherConfig configures a Watcher.
type WatcherConfig struct {
	DebounceMs int         // Debounce delay in milliseconds (default: 200ms)
	Logger     *zap.Logger // Logger for events
}

// Watcher reloads a fixed set of files when they change on disk.
//
// Parent directories are watched rather than the files themselves so that
// editors which save by rename keep being tracked.
type Watcher struct {
	watcher *fsnotify.Watcher
	paths   map[string]bool
	config  WatcherConfig
	logger  *zap.Logger
	changes chan Change

	debounceTimers map[string]*time.Timer
	debounceMu     sync.Mutex

	stopCh  chan struct{}
	doneCh  chan struct{}
	stopped bool
	stopMu  sync.Mutex
}

// NewWatcher creates a watcher for paths. Call Start to begin delivering changes.
func NewWatcher(paths []string, config WatcherConfig) (*Watcher, error) {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.DebounceMs == 0 {
		config.DebounceMs = 200
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		watcher:        fw,
		paths:          make(map[string]bool, len(paths)),
		config:         config,
		logger:         config.Logger,
		changes:        make(chan Change, len(paths)),
		debounceTimers: make(map[string]*time.Timer),
		stopCh:         make(chan struct{}),
		doneCh:         make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		w.paths[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	return w, nil
}

// Changes delivers reloaded files.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start runs the watch loop until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	w.logger.Info("file watcher started", zap.Int("files", len(w.paths)), zap.Int("debounce_ms", w.config.DebounceMs))
	go w.watchLoop(ctx)
}

// Stop stops the watcher and waits for the loop to exit.
func (w *Watcher) Stop() error {
	w.stopMu.Lock()
	defer w.stopMu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopCh)
	<-w.doneCh

	w.debounceMu.Lock()
	for name, timer := range w.debounceTimers {
		timer.Stop()
		delete(w.debounceTimers, name)
	}
	w.debounceMu.Unlock()

	return w.watcher.Close()
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			w.logger.Debug("file watcher stopped")
			return
		case <-ctx.Done():
			w.logger.Debug("file watcher context cancelled")
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
			w.logger.Error("file watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil || !w.paths[abs] {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, exists := w.debounceTimers[abs]; exists {
		timer.Stop()
	}
	w.debounceTimers[abs] = time.AfterFunc(
		time.Duration(w.config.DebounceMs)*time.Millisecond,
		func() {
			w.debounceMu.Lock()
			delete(w.debounceTimers, abs)
			w.debounceMu.Unlock()
			w.reload(abs)
		},
	)
}

func (w *Watcher) reload(path string) {
	text, err := ReadFile(path)
	if err != nil {
		w.logger.Warn("reloading watched file failed", zap.String("path", path), zap.Error(err))
	} else {
		w.logger.Debug("reloaded watched file", zap.String("path", path), zap.Int("bytes", len(text)))
	}

	select {
	case w.changes <- Change{Path: path, Text: text, Err: err}:
	case <-w.stopCh:
	}
}
