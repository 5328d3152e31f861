package output

import "time"

// Scheduler interface - Output port
// Runs deferred one-shot callbacks, such as the notification auto-clear.
type Scheduler interface {
	// AfterFunc runs f once after d has elapsed, on its own goroutine.
	AfterFunc(d time.Duration, f func())
}

// Clock interface - Output port
// Source of wall-clock time for ledger ids and timestamps.
type Clock interface {
	Now() time.Time
}
