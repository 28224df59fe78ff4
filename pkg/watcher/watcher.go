// Package watcher provides debounced change notification for a single
// model file, used by the viewer to auto-reload the open model.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches one file and reports debounced change events on
// a channel. Editors often produce bursts of write events per save;
// the debounce window collapses each burst into one notification.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	changes  chan string

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

// New creates a watcher for the given file
func New(path string, debounce time.Duration) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file: many editors replace the
	// file on save, which drops a direct file watch.
	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	fw := &FileWatcher{
		watcher:  fsWatcher,
		path:     absPath,
		debounce: debounce,
		changes:  make(chan string, 1),
		done:     make(chan struct{}),
	}
	go fw.run()
	return fw, nil
}

// Changes returns the channel on which change notifications arrive.
// Each value is the absolute path of the changed file.
func (fw *FileWatcher) Changes() <-chan string {
	return fw.changes
}

func (fw *FileWatcher) run() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Name != fw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			fw.scheduleNotify()

		case _, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}

		case <-fw.done:
			return
		}
	}
}

func (fw *FileWatcher) scheduleNotify() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, func() {
		select {
		case fw.changes <- fw.path:
		default:
			// A notification is already pending
		}
	})
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()

	close(fw.done)
	return fw.watcher.Close()
}
