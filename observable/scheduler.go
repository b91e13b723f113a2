package observable

import "time"

// Scheduler runs fn once, no earlier than d from now. Implementations must
// never run fn synchronously inside ScheduleAfter.
type Scheduler interface {
	ScheduleAfter(d time.Duration, fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(d time.Duration, fn func())

// ScheduleAfter calls f(d, fn).
func (f SchedulerFunc) ScheduleAfter(d time.Duration, fn func()) { f(d, fn) }

// TimerScheduler schedules on runtime timers. Callbacks run on their own
// goroutines.
type TimerScheduler struct{}

// ScheduleAfter implements Scheduler using time.AfterFunc.
func (TimerScheduler) ScheduleAfter(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// DefaultScheduler is used by Observable.Delay.
var DefaultScheduler Scheduler = TimerScheduler{}
