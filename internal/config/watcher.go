package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before a change is
// reported.
const DefaultDebounce = 100 * time.Millisecond

// Event represents a settings file change.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the last change of the burst was seen.
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates the file was created, or replaced by a rename.
	OpCreate

	// OpRemove indicates the file was deleted or renamed away.
	OpRemove
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Handler is called when a change is detected. It runs on the watcher's
// goroutine.
type Handler func(event Event)

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the quiet period before a change is reported.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// Watcher reports changes to one settings file.
type Watcher struct {
	path     string
	handler  Handler
	debounce time.Duration
	fsw      *fsnotify.Watcher

	mu      sync.Mutex
	pending *Event
	errs    []error
}

// NewWatcher creates a watcher for path. The file need not exist yet but
// its directory must.
func NewWatcher(path string, handler Handler, opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		handler:  handler,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	w.fsw = fsw
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run delivers events until ctx is done, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			op, relevant := w.translate(ev)
			if !relevant {
				continue
			}
			w.queue(Event{Path: w.path, Op: op, Time: time.Now()})
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.mu.Lock()
			w.errs = append(w.errs, err)
			w.mu.Unlock()

		case <-timer.C:
			w.flush()
		}
	}
}

// Errors returns the watcher errors seen so far.
func (w *Watcher) Errors() []error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]error(nil), w.errs...)
}

func (w *Watcher) translate(ev fsnotify.Event) (Operation, bool) {
	if filepath.Clean(ev.Name) != w.path {
		return 0, false
	}
	switch {
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		return OpRemove, true
	case ev.Has(fsnotify.Create):
		return OpCreate, true
	case ev.Has(fsnotify.Write):
		return OpWrite, true
	default:
		return 0, false
	}
}

// queue coalesces a burst of events:
//   - create + write => create
//   - write + write => write (latest time)
//   - remove + create => create (an atomic save)
//   - any + remove => remove
func (w *Watcher) queue(event Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending == nil {
		w.pending = &event
		return
	}
	if event.Op == OpWrite && w.pending.Op != OpWrite {
		event.Op = w.pending.Op
	}
	*w.pending = event
}

func (w *Watcher) flush() {
	w.mu.Lock()
	event := w.pending
	w.pending = nil
	w.mu.Unlock()

	if event != nil && w.handler != nil {
		w.safeCallHandler(*event)
	}
}

// safeCallHandler calls the handler with panic recovery so one bad
// reload does not stop the watcher.
func (w *Watcher) safeCallHandler(event Event) {
	defer func() {
		_ = recover()
	}()
	w.handler(event)
}

// Watch creates a Watcher for path and runs it until ctx is done.
func Watch(ctx context.Context, path string, handler Handler, opts ...WatchOption) error {
	w, err := NewWatcher(path, handler, opts...)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
