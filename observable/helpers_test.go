package observable

import (
	"fmt"
	"sync"
	"time"
)

// signal is one call received by a recorder.
type signal struct {
	kind  string // "next", "error" or "complete"
	value any
	err   error
	at    time.Time
}

func (s signal) String() string {
	switch s.kind {
	case "next":
		return fmt.Sprintf("next(%v)", s.value)
	case "error":
		return fmt.Sprintf("error(%v)", s.err)
	default:
		return s.kind
	}
}

// recorder is a thread-safe Observer that keeps every signal.
type recorder struct {
	mu      sync.Mutex
	signals []signal
	done    chan struct{}
	once    sync.Once
}

func newRecorder() *recorder {
	return &recorder{done: make(chan struct{})}
}

func (r *recorder) Next(v any)    { r.add(signal{kind: "next", value: v}) }
func (r *recorder) Error(e error) { r.add(signal{kind: "error", err: e}); r.finish() }
func (r *recorder) Complete()     { r.add(signal{kind: "complete"}); r.finish() }

func (r *recorder) add(s signal) {
	s.at = time.Now()
	r.mu.Lock()
	r.signals = append(r.signals, s)
	r.mu.Unlock()
}

func (r *recorder) finish() { r.once.Do(func() { close(r.done) }) }

func (r *recorder) all() []signal {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]signal, len(r.signals))
	copy(out, r.signals)
	return out
}

func (r *recorder) values() []any {
	var out []any
	for _, s := range r.all() {
		if s.kind == "next" {
			out = append(out, s.value)
		}
	}
	return out
}

func (r *recorder) err() error {
	for _, s := range r.all() {
		if s.kind == "error" {
			return s.err
		}
	}
	return nil
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, s := range r.all() {
		if s.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) trace() []string {
	all := r.all()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = s.String()
	}
	return out
}

func (r *recorder) wait(timeout time.Duration) bool {
	select {
	case <-r.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func equalAny(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// reverseScheduler holds callbacks until release, then runs them newest first.
type reverseScheduler struct {
	mu  sync.Mutex
	fns []func()
}

func (s *reverseScheduler) ScheduleAfter(_ time.Duration, fn func()) {
	s.mu.Lock()
	s.fns = append(s.fns, fn)
	s.mu.Unlock()
}

func (s *reverseScheduler) release() {
	s.mu.Lock()
	fns := s.fns
	s.fns = nil
	s.mu.Unlock()
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

func divideBy(n int) MapFunc {
	return func(v any) (any, error) {
		return v.(int) / n, nil
	}
}

func notEqual(x any) FilterFunc {
	return func(v any) (bool, error) {
		return v != x, nil
	}
}
