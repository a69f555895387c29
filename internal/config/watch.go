package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/thenatx/nart/internal/system"
)

// Watch reloads the settings file whenever it changes on disk and hands
// the result to onChange, until ctx is done. The watch is best-effort:
// setup failures are returned, later watcher errors only logged.
func Watch(ctx context.Context, onChange func(Settings)) error {
	p, err := SettingsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory: editors replace the file rather than write in
	// place, which would drop a watch on the file itself.
	if err := w.Add(filepath.Dir(p)); err != nil {
		_ = w.Close()
		return err
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name != p || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				s, err := Load()
				if err != nil {
					system.Logger.Warn("reloading settings failed", "err", err)
					continue
				}
				onChange(s)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				system.Logger.Warn("settings watcher error", "err", err)
			}
		}
	}()
	return nil
}
