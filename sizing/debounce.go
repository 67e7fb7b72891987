package sizing

import (
	"sync"
	"time"
)

// debouncer collapses a burst of calls into one trailing invocation
// carrying the newest function. Each call cancels the previous timer and
// starts a fresh quiet period, so nothing fires until calls stop arriving
// for the full delay.
//
// The timer callback runs on its own goroutine, hence the mutex; this is
// the only place in the package that needs one.
type debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	clock Clock
	timer Timer
}

func newDebouncer(delay time.Duration, clock Clock) *debouncer {
	return &debouncer{delay: delay, clock: clock}
}

// call schedules fn to run after the quiet period, superseding any
// previously scheduled function.
func (d *debouncer) call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// stop cancels the pending invocation, if any.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
