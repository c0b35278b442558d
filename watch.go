package unitview

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"vawter.tech/stopper"
)

// UnitFileEvent signals that unit files changed on disk and a fresh listing
// is worth triggering. It is advisory only: the watcher never touches the
// store itself.
type UnitFileEvent struct {
	// Path is the changed file, empty on watcher errors
	Path string
	// Err is a watcher error, nil for change events
	Err error
}

// WatchUnitFiles watches systemd unit directories for changes and emits
// debounced refresh hints. When dirs is empty, DefaultUnitDirs is used.
//
// The returned cleanup function stops the watcher, closes the channel, and
// waits for the watch goroutine to exit.
func WatchUnitFiles(ctx context.Context, dirs ...string) (<-chan UnitFileEvent, func() error, error) {
	if len(dirs) == 0 {
		dirs = DefaultUnitDirs
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, nil, err
		}
	}

	ch := make(chan UnitFileEvent, 10)

	sctx := stopper.WithContext(ctx)
	sctx.Defer(func() {
		_ = watcher.Close()
		close(ch)
	})

	var mu sync.Mutex
	var debouncer *time.Timer
	var pending string

	cleanup := func() error {
		sctx.Stop(100 * time.Millisecond)
		return sctx.Wait()
	}

	emit := func() {
		mu.Lock()
		path := pending
		mu.Unlock()

		if sctx.IsStopping() {
			return
		}
		select {
		case ch <- UnitFileEvent{Path: path}:
		case <-sctx.Stopping():
		}
	}

	sctx.Go(func(sctx *stopper.Context) error {
		sctx.Defer(func() {
			mu.Lock()
			if debouncer != nil {
				debouncer.Stop()
			}
			mu.Unlock()
		})

		for {
			select {
			case <-sctx.Stopping():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				mu.Lock()
				pending = event.Name
				if debouncer != nil {
					debouncer.Stop()
				}
				debouncer = time.AfterFunc(DefaultWatchDebounce, emit)
				mu.Unlock()

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil && !sctx.IsStopping() {
					select {
					case ch <- UnitFileEvent{Err: err}:
					case <-sctx.Stopping():
						return nil
					}
				}
			}
		}
	})

	return ch, cleanup, nil
}
