package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the store whenever its file changes on disk, until ctx is
// cancelled. The directory is watched rather than the file so that editors
// which save by renaming a temporary file are picked up. Invalid documents
// are logged and skipped. The store's fs must be backed by the OS filesystem.
//
// onReload, if non-nil, is called after every reload attempt with its error.
func (s *Store) Watch(ctx context.Context, onReload func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create content watcher: %w", err)
	}

	target, err := filepath.Abs(s.path)
	if err != nil {
		watcher.Close()
		return fmt.Errorf("resolve content path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	slog.Info("Watching site content for changes", "path", target)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				slog.Debug("Content watcher stopped")
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				err := s.Reload()
				if err != nil {
					slog.Error("Site content reload failed, keeping previous version", "path", target, "error", err)
				} else {
					slog.Info("Site content reloaded", "path", target)
				}
				if onReload != nil {
					onReload(err)
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("Content watcher error", "error", err)
			}
		}
	}()
	return nil
}
