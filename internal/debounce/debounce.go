// Package debounce implements a trailing-edge debouncer: within a burst of calls
// only the last one runs, once the window has elapsed since it was made.
package debounce

import (
	"sync"
	"time"
)

// ShouldFire reports whether a call made at last may run at now
func ShouldFire(last, now time.Time, window time.Duration) bool {
	return !now.Before(last.Add(window))
}

// Debouncer delays a function until no newer call arrives within the window
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	now     func() time.Time
	last    time.Time
	seq     uint64
	pending func()
	timer   *time.Timer
}

// New creates a Debouncer with the given window
func New(window time.Duration) *Debouncer {
	return &Debouncer{window: window, now: time.Now}
}

// Call schedules fn, replacing any call still waiting
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	d.last = d.now()
	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}

	seq := d.seq
	d.timer = time.AfterFunc(d.window, func() { d.fire(seq) })
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || d.pending == nil {
		d.mu.Unlock()
		return
	}
	now := d.now()
	if !ShouldFire(d.last, now, d.window) {
		remaining := d.last.Add(d.window).Sub(now)
		d.timer = time.AfterFunc(remaining, func() { d.fire(seq) })
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	fn()
}

// Flush runs the waiting call immediately. It reports whether there was one.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// Stop drops the waiting call without running it
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a call is waiting to run
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}
