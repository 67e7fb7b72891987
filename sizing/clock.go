package sizing

import "time"

// Clock abstracts timer creation so debounce behavior can be driven by
// virtual time in tests instead of real delays.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is the stoppable handle returned by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}

// systemClock is the real implementation over the time package.
type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
