package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hlop3z/sqlforge/internal/alerr"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 150 * time.Millisecond

// watchFile calls onChange after path is written, created or replaced, until
// ctx is done. The parent directory is watched so atomic saves (write to a
// temp file, then rename) are seen. onChange runs on the calling goroutine.
func watchFile(ctx context.Context, path string, log *slog.Logger, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return alerr.Wrap(alerr.ErrWatchFailure, err, "failed to resolve path").WithPath(path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return alerr.Wrap(alerr.ErrWatchFailure, err, "failed to start file watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return alerr.Wrap(alerr.ErrWatchFailure, err, "failed to watch directory").WithPath(filepath.Dir(abs))
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				log.Debug("project file changed", "path", path, "op", event.Op.String())
				pending = time.After(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("file watcher error", "error", err)
		case <-pending:
			pending = nil
			onChange()
		}
	}
}
