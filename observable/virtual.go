package observable

import (
	"container/heap"
	"sync"
	"time"
)

// VirtualScheduler is a manually driven clock. Callbacks fire only from
// Advance or Flush, in deadline order and FIFO among equal deadlines.
type VirtualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers timerHeap
}

// NewVirtualScheduler returns a scheduler whose clock starts at zero.
func NewVirtualScheduler() *VirtualScheduler {
	return &VirtualScheduler{}
}

// ScheduleAfter registers fn to fire at Now()+d. Negative d counts as zero.
func (v *VirtualScheduler) ScheduleAfter(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	heap.Push(&v.timers, &virtualTimer{at: v.now + d, seq: v.seq, fn: fn})
}

// Now returns the virtual time elapsed since creation.
func (v *VirtualScheduler) Now() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// Pending returns the number of callbacks that have not fired.
func (v *VirtualScheduler) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.timers.Len()
}

// Advance moves the clock forward by d, firing every callback that falls due,
// including callbacks scheduled by other callbacks. It returns the number fired.
func (v *VirtualScheduler) Advance(d time.Duration) int {
	v.mu.Lock()
	target := v.now + d
	v.mu.Unlock()

	fired := 0
	for {
		v.mu.Lock()
		if v.timers.Len() == 0 || v.timers[0].at > target {
			v.now = target
			v.mu.Unlock()
			return fired
		}
		t := heap.Pop(&v.timers).(*virtualTimer)
		v.now = t.at
		v.mu.Unlock()

		t.fn()
		fired++
	}
}

// Flush fires callbacks until none remain, moving the clock to each deadline.
func (v *VirtualScheduler) Flush() int {
	fired := 0
	for {
		v.mu.Lock()
		if v.timers.Len() == 0 {
			v.mu.Unlock()
			return fired
		}
		t := heap.Pop(&v.timers).(*virtualTimer)
		v.now = t.at
		v.mu.Unlock()

		t.fn()
		fired++
	}
}

type virtualTimer struct {
	at  time.Duration
	seq uint64
	fn  func()
}

type timerHeap []*virtualTimer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].at == h[j].at {
		return h[i].seq < h[j].seq
	}
	return h[i].at < h[j].at
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(*virtualTimer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
