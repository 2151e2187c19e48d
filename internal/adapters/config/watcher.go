package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/responsive/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigWatcher = (*Watcher)(nil)

// Watcher implements ports.ConfigWatcher using fsnotify.
type Watcher struct {
	logger ports.Logger
	window time.Duration
}

// NewWatcher creates a new configuration file watcher.
func NewWatcher(log ports.Logger) *Watcher {
	return &Watcher{logger: log, window: DefaultDebounceWindow}
}

// WithDebounceWindow overrides the window used to coalesce events.
func (w *Watcher) WithDebounceWindow(d time.Duration) *Watcher {
	w.window = d
	return w
}

// Watch watches the directory containing path, so that editors replacing the
// file on save are noticed, and calls onChange after the file changed.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", path)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	defer func() { _ = fsWatcher.Close() }()

	if err := fsWatcher.Add(filepath.Dir(target)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch config directory"), "path", path)
	}

	debouncer := NewDebouncer(w.window, onChange)
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename) {
				debouncer.Trigger()
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn(zerr.With(zerr.Wrap(err, "config watcher error"), "path", path).Error())
		}
	}
}
