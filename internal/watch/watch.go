// Package watch reports changes made on disk to the file being edited.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Event is a change to the watched file.
type Event struct {
	Path    string
	Removed bool
}

// Watcher follows at most one file. It watches the parent directory so that
// editors which save by renaming a temp file over the target are still seen.
type Watcher struct {
	fs     *fsnotify.Watcher
	events chan Event
	log    func(format string, args ...any)

	mu   sync.Mutex
	path string
	dir  string
	done chan struct{}
}

func New(logf func(string, ...any)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	w := &Watcher{fs: fw, events: make(chan Event, 8), log: logf, done: make(chan struct{})}
	go w.loop()
	return w, nil
}

// Events is closed by Close.
func (w *Watcher) Events() <-chan Event { return w.events }

// Watch switches to path. An empty path stops watching.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	dir := ""
	if path != "" {
		path = filepath.Clean(path)
		dir = filepath.Dir(path)
	}
	if dir != w.dir {
		if w.dir != "" {
			_ = w.fs.Remove(w.dir)
		}
		if dir != "" {
			if err := w.fs.Add(dir); err != nil {
				w.dir, w.path = "", ""
				return fmt.Errorf("watch %s: %w", dir, err)
			}
		}
		w.dir = dir
	}
	w.path = path
	return nil
}

func (w *Watcher) current() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

func (w *Watcher) loop() {
	defer close(w.events)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			target := w.current()
			if target == "" || filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			out := Event{Path: target, Removed: ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)}
			select {
			case w.events <- out:
			case <-w.done:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log("watch: %v", err)
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
