package watcher

import (
	"sync"
	"time"
	"unique"
)

// Debouncer coalesces rapid file system events into batched callbacks. An
// editor save can fire several events for one file within milliseconds; the
// debouncer collapses them into a single invocation per window.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)

	// deliverMu serializes callback invocations so Flush can wait out a
	// delivery the timer already started.
	deliverMu sync.Mutex
}

// NewDebouncer creates a debouncer with the given window. The callback runs
// synchronously on the timer goroutine with the coalesced, deduplicated
// paths.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add schedules a path for the next callback, restarting the window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Interned handles deduplicate repeated events for the same file.
	d.pending[unique.Make(path)] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// Flush delivers all pending paths immediately, blocking until the callback
// returns. A delivery the timer already started is waited for first. Used on
// shutdown so no observed change is dropped.
func (d *Debouncer) Flush() {
	d.deliverMu.Lock()
	defer d.deliverMu.Unlock()

	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	paths := d.takeLocked()
	d.mu.Unlock()

	d.deliver(paths)
}

func (d *Debouncer) fire() {
	d.deliverMu.Lock()
	defer d.deliverMu.Unlock()

	d.mu.Lock()
	d.timer = nil
	paths := d.takeLocked()
	d.mu.Unlock()

	d.deliver(paths)
}

// takeLocked drains the pending set. Callers must hold d.mu.
func (d *Debouncer) takeLocked() []string {
	if len(d.pending) == 0 {
		return nil
	}
	paths := make([]string, 0, len(d.pending))
	for h := range d.pending {
		paths = append(paths, h.Value())
	}
	d.pending = make(map[unique.Handle[string]]struct{})
	return paths
}

func (d *Debouncer) deliver(paths []string) {
	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}
