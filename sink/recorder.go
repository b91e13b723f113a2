package sink

import (
	"sync"
	"time"
)

// Signal kinds.
const (
	SignalNext     = "next"
	SignalError    = "error"
	SignalComplete = "complete"
)

// Signal is one call received by a Recorder.
type Signal struct {
	Kind  string
	Value any
	Err   error
	At    time.Time
}

// Recorder is an Observer that keeps every signal it receives. It is safe for
// concurrent use.
type Recorder struct {
	mu      sync.Mutex
	signals []Signal
	done    chan struct{}
	once    sync.Once
	now     func() time.Time
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		done: make(chan struct{}),
		now:  time.Now,
	}
}

func (r *Recorder) Next(value any) {
	r.add(Signal{Kind: SignalNext, Value: value})
}

func (r *Recorder) Error(err error) {
	r.add(Signal{Kind: SignalError, Err: err})
	r.once.Do(func() { close(r.done) })
}

func (r *Recorder) Complete() {
	r.add(Signal{Kind: SignalComplete})
	r.once.Do(func() { close(r.done) })
}

func (r *Recorder) add(s Signal) {
	s.At = r.now()
	r.mu.Lock()
	r.signals = append(r.signals, s)
	r.mu.Unlock()
}

// Done is closed once Error or Complete has been received.
func (r *Recorder) Done() <-chan struct{} {
	return r.done
}

// Signals returns a copy of everything received, in order.
func (r *Recorder) Signals() []Signal {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Signal, len(r.signals))
	copy(out, r.signals)
	return out
}

// Values returns the values received through Next.
func (r *Recorder) Values() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []any
	for _, s := range r.signals {
		if s.Kind == SignalNext {
			out = append(out, s.Value)
		}
	}
	return out
}

// Err returns the first error received, or nil.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.signals {
		if s.Kind == SignalError {
			return s.Err
		}
	}
	return nil
}

// Completed reports whether Complete was received.
func (r *Recorder) Completed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.signals {
		if s.Kind == SignalComplete {
			return true
		}
	}
	return false
}
