package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/dynhelp/pkg/observability"
)

// DebounceDelay is how long the file must stay quiet before Watch reloads
// it. Editors emit several events per save, some of them while the file is
// still half written.
const DebounceDelay = 150 * time.Millisecond

// debounceDelay is DebounceDelay; tests shorten it.
var debounceDelay = DebounceDelay

// Watch reloads the tour file at path every time it changes and passes the
// result to onChange. It blocks until ctx is cancelled. A burst of events
// closer together than DebounceDelay causes a single reload.
//
// The parent directory is watched rather than the file, so editors that
// save by renaming a temporary file still trigger a reload. A file that
// fails to load is reported through onChange with a nil tour; the watch
// keeps running.
func Watch(ctx context.Context, path string, logger *log.Logger, onChange func(*Tour, error)) error {
	logger = observability.Logger(logger).WithPrefix("watch")
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			logger.Warn("failed to close watcher", "err", err)
		}
	}()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Debug("watching tour file", "path", abs)

	timer := time.NewTimer(debounceDelay)
	timer.Stop()
	defer timer.Stop()
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-pending:
			pending = nil
			onChange(Load(path))

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !relevant(event, abs) {
				continue
			}
			logger.Debug("tour file changed", "op", event.Op.String())
			timer.Reset(debounceDelay)
			pending = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Warn("watch error", "err", err)
		}
	}
}

func relevant(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
