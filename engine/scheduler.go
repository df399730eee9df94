package engine

import "time"

// ScheduledTask is a pending one-shot callback
type ScheduledTask interface {
	// Stop cancels the task, returning false if it already fired or was stopped
	Stop() bool
}

// Scheduler runs callbacks after a delay on the caller's event loop
// Implementations must never run a callback concurrently with another one
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) ScheduledTask
}
