package observable

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kbukum/rxkit/errors"
)

// Loop is a single-threaded event loop. Posted tasks and timer callbacks run
// one at a time on the goroutine that called Run, in the order they became
// ready.
type Loop struct {
	mu          sync.Mutex
	tasks       []func()
	outstanding int
	idle        chan struct{}

	wake    chan struct{}
	running atomic.Bool
}

// NewLoop creates an idle loop. Call Run to start processing.
func NewLoop() *Loop {
	idle := make(chan struct{})
	close(idle)
	return &Loop{
		idle: idle,
		wake: make(chan struct{}, 1),
	}
}

// Post queues fn to run on the loop.
func (l *Loop) Post(fn func()) {
	l.acquire()
	l.ready(fn)
}

// ScheduleAfter queues fn to run on the loop once d has elapsed.
func (l *Loop) ScheduleAfter(d time.Duration, fn func()) {
	l.acquire()
	time.AfterFunc(d, func() { l.ready(fn) })
}

// Run processes tasks until ctx is cancelled. Only one Run may be active.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return errors.New(errors.ErrCodeInternal, "loop is already running")
	}
	defer l.running.Store(false)

	for {
		if fn := l.next(); fn != nil {
			l.run(fn)
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Wait blocks until no posted task or timer is outstanding, or ctx ends.
func (l *Loop) Wait(ctx context.Context) error {
	for {
		l.mu.Lock()
		if l.outstanding == 0 {
			l.mu.Unlock()
			return nil
		}
		idle := l.idle
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-idle:
		}
	}
}

// Outstanding reports the number of tasks and timers not yet run.
func (l *Loop) Outstanding() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.outstanding
}

func (l *Loop) acquire() {
	l.mu.Lock()
	if l.outstanding == 0 {
		l.idle = make(chan struct{})
	}
	l.outstanding++
	l.mu.Unlock()
}

func (l *Loop) release() {
	l.mu.Lock()
	l.outstanding--
	if l.outstanding == 0 {
		close(l.idle)
	}
	l.mu.Unlock()
}

func (l *Loop) ready(fn func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) next() func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.tasks) == 0 {
		return nil
	}
	fn := l.tasks[0]
	l.tasks[0] = nil
	l.tasks = l.tasks[1:]
	return fn
}

func (l *Loop) run(fn func()) {
	defer l.release()
	fn()
}
