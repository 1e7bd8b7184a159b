// Package watch reports changes to input files so grids can be re-rendered
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultInterval is the polling period used as a backup to fsnotify
const DefaultInterval = 500 * time.Millisecond

// Event reports that a watched file changed
type Event struct {
	Path    string
	ModTime time.Time
	Size    int64
	Removed bool
}

// Source delivers change events
type Source interface {
	Changes() <-chan Event
	Errors() <-chan error
	Close() error
}

type fileState struct {
	modTime time.Time
	size    int64
	exists  bool
}

func (s fileState) event(path string) Event {
	return Event{Path: path, ModTime: s.modTime, Size: s.size, Removed: !s.exists}
}

// Watcher monitors a set of files for changes
type Watcher struct {
	watcher  *fsnotify.Watcher
	fs       FileSystem
	log      logrus.FieldLogger
	interval time.Duration

	mu     sync.Mutex
	states map[string]fileState

	changes chan Event
	errors  chan error
	done    chan struct{}
	stopped chan struct{}
}

// Option configures a Watcher
type Option func(*Watcher)

// WithInterval sets the polling period
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) { w.interval = d }
}

// WithLogger sets the logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(w *Watcher) { w.log = l }
}

// WithFileSystem replaces the file system used for polling
func WithFileSystem(fs FileSystem) Option {
	return func(w *Watcher) { w.fs = fs }
}

// New starts watching paths. The directories containing the files are
// watched so editors that replace files on save are still seen.
func New(paths []string, opts ...Option) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no paths to watch")
	}

	w := &Watcher{
		fs:       OSFileSystem{},
		log:      logrus.StandardLogger(),
		interval: DefaultInterval,
		states:   make(map[string]fileState),
		changes:  make(chan Event, 16),
		errors:   make(chan error, 4),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	w.watcher = fsWatcher

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsWatcher.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		w.states[abs] = w.stat(abs)
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			fsWatcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	go w.watch()
	return w, nil
}

func (w *Watcher) stat(path string) fileState {
	info, err := w.fs.Stat(path)
	if err != nil {
		return fileState{}
	}
	return fileState{modTime: info.ModTime(), size: info.Size(), exists: true}
}

// watch runs the file watching loop
func (w *Watcher) watch() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.stopped)
	defer close(w.changes)
	defer close(w.errors)

	for {
		select {
		case <-w.done:
			return

		case <-ticker.C:
			// Polling catches changes fsnotify missed
			w.poll()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.check(filepath.Clean(event.Name), true)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("watch error")
			select {
			case w.errors <- err:
			case <-w.done:
				return
			}
		}
	}
}

func (w *Watcher) poll() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.states))
	for p := range w.states {
		paths = append(paths, p)
	}
	w.mu.Unlock()

	for _, p := range paths {
		w.check(p, false)
	}
}

// check emits an event when path is watched and its state changed. A
// notified write always counts, since mtime granularity can hide it.
func (w *Watcher) check(path string, notified bool) {
	w.mu.Lock()
	prev, watched := w.states[path]
	if !watched {
		w.mu.Unlock()
		return
	}
	cur := w.stat(path)
	w.states[path] = cur
	w.mu.Unlock()

	if cur == prev && !(notified && cur.exists) {
		return
	}
	if !cur.exists && !prev.exists {
		return
	}

	w.log.WithFields(logrus.Fields{"path": path, "removed": !cur.exists}).Debug("file changed")
	select {
	case w.changes <- cur.event(path):
	case <-w.done:
	}
}

// Changes returns a channel of change events
func (w *Watcher) Changes() <-chan Event {
	return w.changes
}

// Errors returns a channel of errors that occur during watching
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		// Already closed
		return nil
	default:
		close(w.done)
	}
	err := w.watcher.Close()
	<-w.stopped
	return err
}
