package scheduler

import (
	"time"

	"storefront-state/internal/ports/output"
)

var (
	_ output.Scheduler = TimerScheduler{}
	_ output.Clock     = SystemClock{}
)

// TimerScheduler runs callbacks with time.AfterFunc.
// Timers are never cancelled; callbacks must be safe to run late.
type TimerScheduler struct{}

// AfterFunc schedules f to run once after d
func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time {
	return time.Now()
}
