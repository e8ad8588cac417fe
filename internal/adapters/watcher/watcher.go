// Package watcher implements file system watching for tracked source files.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/SummerStorm/jurigged/internal/core/ports"
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// skipDirectories are directory names never worth watching.
var skipDirectories = map[string]bool{
	".git":         true,
	".hg":          true,
	"node_modules": true,
	"vendor":       true,
}

const eventChannelBuffer = 100

// Watcher implements recursive file watching on top of fsnotify. Directories
// created under a watched root while watching are picked up on the fly.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	log       ports.Logger
	events    chan ports.WatchEvent
}

// New creates a watcher. Close must be called to release the descriptors.
func New(log ports.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	return &Watcher{
		fsWatcher: fsw,
		log:       log,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the given roots recursively until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context, roots ...string) error {
	if len(roots) == 0 {
		return zerr.New("no roots to watch")
	}
	for _, root := range roots {
		if err := w.addTree(root); err != nil {
			return err
		}
	}
	go w.pump(ctx)
	return nil
}

// Events returns the channel on which file changes are delivered.
func (w *Watcher) Events() <-chan ports.WatchEvent {
	return w.events
}

// Close releases the underlying watch descriptors.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

// addTree walks root and registers every non-skipped directory.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if skipDirectories[d.Name()] {
			return filepath.SkipDir
		}
		if err := w.fsWatcher.Add(path); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", path)
		}
		return nil
	})
}

// pump translates fsnotify events into WatchEvents until ctx is cancelled.
func (w *Watcher) pump(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(ctx, ev)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(ctx context.Context, ev fsnotify.Event) {
	// New directories join the watch set; everything else is reported.
	if ev.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if !skipDirectories[filepath.Base(ev.Name)] {
				if err := w.fsWatcher.Add(ev.Name); err != nil {
					w.log.Warn("failed to watch new directory", "path", ev.Name, "error", err)
				}
			}
			return
		}
	}

	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) &&
		!ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
		return
	}

	out := ports.WatchEvent{
		Path:    ev.Name,
		Removed: ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename),
	}
	select {
	case w.events <- out:
	case <-ctx.Done():
	}
}
