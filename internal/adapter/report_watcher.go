package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	m "gooze.dev/pkg/mutanalysis/internal/model"
)

// DefaultWatchDebounce is how long a report must stay quiet before it is emitted.
const DefaultWatchDebounce = 500 * time.Millisecond

// ReportWatcher reports changed report files.
type ReportWatcher interface {
	// Watch emits the path of every report created or written under paths until
	// ctx ends. The returned channel is closed when watching stops.
	Watch(ctx context.Context, paths []m.Path, reportName string) (<-chan m.Path, error)
}

// FSNotifyReportWatcher implements ReportWatcher with fsnotify.
type FSNotifyReportWatcher struct {
	fs       ReportFSAdapter
	debounce time.Duration
}

// NewFSNotifyReportWatcher creates a watcher. A non-positive debounce uses
// DefaultWatchDebounce.
func NewFSNotifyReportWatcher(fs ReportFSAdapter, debounce time.Duration) *FSNotifyReportWatcher {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	return &FSNotifyReportWatcher{fs: fs, debounce: debounce}
}

// Watch implements ReportWatcher.
func (w *FSNotifyReportWatcher) Watch(ctx context.Context, paths []m.Path, reportName string) (<-chan m.Path, error) {
	if reportName == "" {
		reportName = DefaultReportName
	}

	if len(paths) == 0 {
		paths = []m.Path{"." + recursiveSuffix}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	hashes := make(map[string]string)

	for _, pattern := range paths {
		root, recursive := splitPattern(string(pattern))

		err := w.addDirs(watcher, root, recursive, reportName, func(path string) {
			w.changed(path, hashes)
		})
		if err != nil {
			_ = watcher.Close()
			return nil, err
		}
	}

	out := make(chan m.Path)

	go w.loop(ctx, watcher, reportName, hashes, out)

	return out, nil
}

// addDirs watches every directory under root and calls onReport for each
// report already present.
func (w *FSNotifyReportWatcher) addDirs(watcher *fsnotify.Watcher, root string, recursive bool, reportName string, onReport func(path string)) error {
	info, err := w.fs.FileInfo(m.Path(root))
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	if !info.IsDir() {
		root = filepath.Dir(root)
		recursive = false
	}

	return w.fs.Walk(m.Path(root), recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			if info.Name() == reportName {
				onReport(path)
			}

			return nil
		}

		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}

		slog.Debug("Watching directory", "path", path)

		return nil
	})
}

// changed records the content hash of path and reports whether it differs
// from the last one seen. Unreadable files count as changed.
func (w *FSNotifyReportWatcher) changed(path string, hashes map[string]string) bool {
	hash, err := w.fs.HashFile(m.Path(path))
	if err != nil {
		slog.Debug("Failed to hash report", "path", path, "error", err)
		delete(hashes, path)

		return true
	}

	if previous, ok := hashes[path]; ok && previous == hash {
		return false
	}

	hashes[path] = hash

	return true
}

func (w *FSNotifyReportWatcher) loop(ctx context.Context, watcher *fsnotify.Watcher, reportName string, hashes map[string]string, out chan<- m.Path) {
	defer close(out)
	defer func() { _ = watcher.Close() }()

	pending := make(map[string]struct{})

	var flush <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					// Nested dirs and reports may appear before the new dir is watched.
					err := w.addDirs(watcher, event.Name, true, reportName, func(path string) {
						pending[path] = struct{}{}
						flush = time.After(w.debounce)
					})
					if err != nil {
						slog.Warn("Failed to watch new directory", "path", event.Name, "error", err)
					}

					continue
				}
			}

			if filepath.Base(event.Name) != reportName {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			pending[event.Name] = struct{}{}
			flush = time.After(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			slog.Warn("Report watcher error", "error", err)

		case <-flush:
			flush = nil

			changed := make([]string, 0, len(pending))
			for path := range pending {
				if w.changed(path, hashes) {
					changed = append(changed, path)
				}
			}

			clear(pending)
			slices.Sort(changed)

			for _, path := range changed {
				select {
				case out <- m.Path(path):
				case <-ctx.Done():
					return
				}
			}
		}
	}
}
