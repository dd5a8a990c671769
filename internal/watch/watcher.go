// Package watch re-runs a callback whenever the site configuration file changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
)

// DefaultDebounce collapses editor save bursts (write + chmod + rename) into one reload.
const DefaultDebounce = 500 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// Watcher monitors a single file and invokes onChange once per burst of events.
type Watcher struct {
	path     string
	onChange func(context.Context)
	debounce time.Duration

	watcher    *fsnotify.Watcher
	mu         sync.Mutex
	started    bool
	stopChan   chan struct{}
	stopOnce   sync.Once
	reloadChan chan struct{}
	wg         sync.WaitGroup
}

// New creates a watcher for path. Nothing is observed until Start.
func New(path string, onChange func(context.Context), opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve config path").
			WithContext("file", path).
			Build()
	}
	w := &Watcher{
		path:       absPath,
		onChange:   onChange,
		debounce:   DefaultDebounce,
		stopChan:   make(chan struct{}),
		reloadChan: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start watches the directory containing the file; watching the file itself
// loses track of it when editors replace it on save.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return errors.RuntimeError("watcher already started").Build()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "failed to create file watcher").Build()
	}
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to watch config directory").
			WithContext("dir", dir).
			Build()
	}
	w.watcher = fw
	w.started = true

	slog.Info("Watching configuration", logfields.ConfigPath(w.path), logfields.Duration(w.debounce))

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

// Stop ends both loops and releases the fsnotify handle. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
		w.mu.Lock()
		fw := w.watcher
		w.mu.Unlock()
		if fw != nil {
			if err := fw.Close(); err != nil {
				slog.Error("Error closing file watcher", logfields.Error(err))
			}
		}
		w.wg.Wait()
	})
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				slog.Debug("Config file change detected", logfields.Path(event.Name), "op", event.Op.String())
				w.trigger()
			case event.Has(fsnotify.Remove):
				slog.Warn("Config file removed", logfields.Path(event.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Config watcher error", logfields.Error(err))
		}
	}
}

// reloadLoop owns the debounce timer and runs onChange on its own goroutine,
// so callbacks never overlap and Stop waits for one in flight.
func (w *Watcher) reloadLoop(ctx context.Context) {
	defer w.wg.Done()
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-w.reloadChan:
			timer.Reset(w.debounce)
		case <-timer.C:
			if ctx.Err() != nil {
				return
			}
			w.onChange(ctx)
		}
	}
}

func (w *Watcher) trigger() {
	select {
	case w.reloadChan <- struct{}{}:
	default:
		// reload already pending
	}
}
