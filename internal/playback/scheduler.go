package playback

import "time"

// Timer is a pending callback. Stop reports whether it prevented the call;
// stopping twice is harmless.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d, on a goroutine of its choosing.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemScheduler schedules on the wall clock with time.AfterFunc.
func SystemScheduler() Scheduler { return systemScheduler{} }
