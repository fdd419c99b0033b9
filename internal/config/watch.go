package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval is how long edits must settle before onChange fires.
// Editors often emit several events for a single save.
const debounceInterval = 100 * time.Millisecond

// Watcher observes the config file and invokes a callback once edits
// settle. It watches the containing directory rather than the file
// itself, because rename-and-replace saves drop a watch on the
// original inode.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func()

	stopOnce sync.Once
	stopCh   chan struct{}
}

// Watch starts watching path and calls onChange after each settled
// burst of modifications. Callers must Stop the returned Watcher.
func Watch(path string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		path:     filepath.Clean(path),
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	go w.watchLoop()
	return w, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Stop stops the watcher and releases its resources. It is safe to
// call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
	})
}

// watchLoop processes filesystem events for the watched file.
func (w *Watcher) watchLoop() {
	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// The directory watch reports sibling files too.
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			debounceTimer.Reset(debounceInterval)

		case <-debounceTimer.C:
			w.onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Keep watching; transient errors are not fatal.
			_ = err
		}
	}
}
