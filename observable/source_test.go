package observable

import (
	"testing"
)

func TestFromSlice_CopiesInput(t *testing.T) {
	values := []any{1, 2}
	src := FromSlice(values)
	values[0] = 99

	rec := newRecorder()
	if err := src.Subscribe(rec); err != nil {
		t.Fatal(err)
	}
	if !equalAny(rec.values(), []any{1, 2}) {
		t.Errorf("values = %v, want [1 2]", rec.values())
	}
}

func TestFromSlice_Empty(t *testing.T) {
	rec := newRecorder()
	if err := FromSlice(nil).Subscribe(rec); err != nil {
		t.Fatal(err)
	}
	if !equalStrings(rec.trace(), []string{"complete"}) {
		t.Errorf("got %v, want [complete]", rec.trace())
	}
}

func TestFromChan(t *testing.T) {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for i := 1; i <= 3; i++ {
			ch <- i * 10
		}
	}()

	rec := newRecorder()
	if err := FromChan(ch).Map(divideBy(10)).Subscribe(rec); err != nil {
		t.Fatal(err)
	}
	want := []string{"next(1)", "next(2)", "next(3)", "complete"}
	if !equalStrings(rec.trace(), want) {
		t.Errorf("got %v, want %v", rec.trace(), want)
	}
}

func TestThrow(t *testing.T) {
	rec := newRecorder()
	if err := Throw(errBoom).Subscribe(rec); err != nil {
		t.Fatal(err)
	}
	if !equalStrings(rec.trace(), []string{"error(boom)"}) {
		t.Errorf("got %v", rec.trace())
	}
}
