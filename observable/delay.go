package observable

import (
	"sync"
	"time"
)

// delayObserver time-shifts Next through a Scheduler.
//
// Values wait in a FIFO queue and every scheduler callback delivers the head
// of the queue, so values leave in arrival order even if the scheduler fires
// equal deadlines out of order. Error and Complete are held while values are
// queued and are delivered right after the last one.
type delayObserver struct {
	d         time.Duration
	scheduler Scheduler
	down      Observer

	mu       sync.Mutex // guards queue and terminal
	queue    []any
	terminal func()

	// deliver serialises calls to down.
	deliver sync.Mutex
}

func (o *delayObserver) Next(value any) {
	o.mu.Lock()
	o.queue = append(o.queue, value)
	o.mu.Unlock()
	o.scheduler.ScheduleAfter(o.d, o.fire)
}

func (o *delayObserver) Error(err error) {
	o.terminate(func() { o.down.Error(err) })
}

func (o *delayObserver) Complete() {
	o.terminate(o.down.Complete)
}

func (o *delayObserver) fire() {
	o.deliver.Lock()
	defer o.deliver.Unlock()

	o.mu.Lock()
	if len(o.queue) == 0 {
		o.mu.Unlock()
		return
	}
	value := o.queue[0]
	o.queue[0] = nil
	o.queue = o.queue[1:]
	var held func()
	if len(o.queue) == 0 {
		held, o.terminal = o.terminal, nil
	}
	o.mu.Unlock()

	o.down.Next(value)
	if held != nil {
		held()
	}
}

func (o *delayObserver) terminate(signal func()) {
	o.mu.Lock()
	if len(o.queue) > 0 {
		// Only the first terminal signal is kept.
		if o.terminal == nil {
			o.terminal = signal
		}
		o.mu.Unlock()
		return
	}
	o.mu.Unlock()

	o.deliver.Lock()
	defer o.deliver.Unlock()
	signal()
}
