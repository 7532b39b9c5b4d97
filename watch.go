package main

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const watchDebounce = 200 * time.Millisecond

// fileWatcher re-runs a callback whenever one sketch file changes. Bursts of
// events are collapsed into one call.
type fileWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange func() error
	log      *zap.SugaredLogger

	mu            sync.Mutex
	debounceTimer *time.Timer
	debounce      time.Duration
}

// newFileWatcher watches the directory holding path so that editors which
// replace the file on save are still seen.
func newFileWatcher(path string, onChange func() error, log *zap.SugaredLogger) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", path)
	}

	return &fileWatcher{
		path:     abs,
		watcher:  watcher,
		onChange: onChange,
		log:      log,
		debounce: watchDebounce,
	}, nil
}

// Run blocks until ctx is done or the watcher fails.
func (fw *fileWatcher) Run(ctx context.Context) error {
	defer fw.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			fw.mu.Lock()
			if fw.debounceTimer != nil {
				fw.debounceTimer.Stop()
			}
			fw.mu.Unlock()
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fw.log.Debugw("sketch file changed", "file", event.Name, "op", event.Op.String())
			fw.schedule()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Warnw("watcher error", "error", err)
		}
	}
}

func (fw *fileWatcher) schedule() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}
	fw.debounceTimer = time.AfterFunc(fw.debounce, func() {
		if err := fw.onChange(); err != nil {
			fw.log.Errorw("re-render failed", "file", fw.path, "error", err)
		}
	})
}
