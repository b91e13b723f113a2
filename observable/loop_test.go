package observable

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/kbukum/rxkit/errors"
)

func runLoop(t *testing.T, l *Loop) (context.Context, func()) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()
	return ctx, func() {
		cancel()
		if err := <-done; !stderrors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	}
}

func TestLoop_PostRunsInOrder(t *testing.T) {
	l := NewLoop()
	var got []int
	for i := 0; i < 5; i++ {
		l.Post(func() { got = append(got, i) })
	}
	if l.Outstanding() != 5 {
		t.Fatalf("outstanding = %d, want 5", l.Outstanding())
	}

	ctx, stop := runLoop(t, l)
	defer stop()
	if err := l.Wait(ctx); err != nil {
		t.Fatal(err)
	}

	for i, v := range got {
		if v != i {
			t.Fatalf("got %v, want 0..4 in order", got)
		}
	}
	if len(got) != 5 {
		t.Errorf("ran %d tasks, want 5", len(got))
	}
}

func TestLoop_ScheduleAfter(t *testing.T) {
	l := NewLoop()
	ctx, stop := runLoop(t, l)
	defer stop()

	start := time.Now()
	var mu sync.Mutex
	var order []string
	record := func(s string) func() {
		return func() {
			mu.Lock()
			order = append(order, s)
			mu.Unlock()
		}
	}
	l.ScheduleAfter(40*time.Millisecond, record("late"))
	l.ScheduleAfter(10*time.Millisecond, record("early"))
	l.Post(record("now"))

	if err := l.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("Wait returned after %v, before the last timer", elapsed)
	}

	mu.Lock()
	defer mu.Unlock()
	if !equalStrings(order, []string{"now", "early", "late"}) {
		t.Errorf("order = %v", order)
	}
}

func TestLoop_TasksNeverOverlap(t *testing.T) {
	l := NewLoop()
	ctx, stop := runLoop(t, l)
	defer stop()

	var active, overlaps int
	task := func() {
		active++
		if active > 1 {
			overlaps++
		}
		time.Sleep(time.Microsecond)
		active--
	}
	for i := 0; i < 50; i++ {
		l.ScheduleAfter(time.Millisecond, task)
		l.Post(task)
	}

	if err := l.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if overlaps != 0 {
		t.Errorf("%d overlapping tasks", overlaps)
	}
}

func TestLoop_RunTwice(t *testing.T) {
	l := NewLoop()
	_, stop := runLoop(t, l)
	defer stop()

	started := make(chan struct{})
	l.Post(func() { close(started) })
	<-started

	err := l.Run(context.Background())
	if !errors.IsCode(err, errors.ErrCodeInternal) {
		t.Errorf("err = %v, want INTERNAL_ERROR", err)
	}
}

func TestLoop_WaitHonoursContext(t *testing.T) {
	l := NewLoop()
	l.Post(func() {})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx); !stderrors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

func TestLoop_WaitWhenIdle(t *testing.T) {
	if err := NewLoop().Wait(context.Background()); err != nil {
		t.Errorf("idle Wait = %v", err)
	}
}
