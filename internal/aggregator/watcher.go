package aggregator

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"photo_archive/internal/domain"
)

// Builder runs one build pass. Satisfied by *Aggregator and by the publish
// wrapper the build command uses.
type Builder interface {
	Build(ctx context.Context) (*domain.BuildStats, error)
}

// Watcher rebuilds the artifact whenever the content directory changes.
// Bursts of events (an editor save, a batch copy) are debounced into one
// rebuild.
type Watcher struct {
	dir      string
	builder  Builder
	debounce time.Duration
	logger   *slog.Logger
}

func NewWatcher(dir string, builder Builder, debounce time.Duration, logger *slog.Logger) *Watcher {
	return &Watcher{
		dir:      dir,
		builder:  builder,
		debounce: debounce,
		logger:   logger.With("component", "watcher"),
	}
}

// Watch blocks until the context is cancelled, rebuilding after each
// debounced change burst. A failed rebuild is logged and watching continues.
func (w *Watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := w.addRecursive(fsw, w.dir); err != nil {
		return err
	}

	w.logger.Info("watching content directory", "dir", w.dir, "debounce", w.debounce)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped")
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("content change", "file", event.Name, "op", event.Op.String())
			if event.Op&fsnotify.Create != 0 {
				// Globs may reach into subdirectories, so new ones get
				// their own watch.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(fsw, event.Name); err != nil {
						w.logger.Warn("watch new directory", "dir", event.Name, "error", err)
					}
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)

		case <-timerC:
			timer = nil
			timerC = nil
			if _, err := w.builder.Build(ctx); err != nil {
				w.logger.Error("rebuild failed", "error", err)
			}
		}
	}
}

// addRecursive watches root and every subdirectory beneath it, skipping
// hidden directories.
func (w *Watcher) addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(filepath.Base(path), ".") {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}
