package observable

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/kbukum/rxkit/errors"
	"github.com/kbukum/rxkit/validation"
)

// StageKind tags a stage descriptor.
type StageKind string

const (
	KindMap    StageKind = "map"
	KindFilter StageKind = "filter"
	KindDelay  StageKind = "delay"
)

// MapFunc transforms one value. A non-nil error is delivered downstream as an
// OPERATOR_FAULT.
type MapFunc func(value any) (any, error)

// FilterFunc decides whether a value is kept. A non-nil error is delivered
// downstream as an OPERATOR_FAULT.
type FilterFunc func(value any) (bool, error)

// Stage is one operator application in a chain. The set of stages is closed:
// MapStage, FilterStage and DelayStage.
type Stage interface {
	Kind() StageKind
	String() string
	// validate reports an unusable descriptor as INVALID_STAGE.
	validate() error
	// wrap builds the intermediate observer for one subscription.
	wrap(downstream Observer, sub *subscription) Observer
}

// MapStage applies Fn to every value.
type MapStage struct {
	Fn MapFunc `validate:"required"`
}

func (MapStage) Kind() StageKind { return KindMap }
func (MapStage) String() string  { return string(KindMap) }

func (s MapStage) validate() error {
	return validation.ValidateAs(s, errors.ErrCodeInvalidStage)
}

func (s MapStage) wrap(down Observer, sub *subscription) Observer {
	return &mapObserver{fn: s.Fn, down: down, sub: sub}
}

// FilterStage keeps the values for which Fn reports true.
type FilterStage struct {
	Fn FilterFunc `validate:"required"`
}

func (FilterStage) Kind() StageKind { return KindFilter }
func (FilterStage) String() string  { return string(KindFilter) }

func (s FilterStage) validate() error {
	return validation.ValidateAs(s, errors.ErrCodeInvalidStage)
}

func (s FilterStage) wrap(down Observer, sub *subscription) Observer {
	return &filterObserver{fn: s.Fn, down: down, sub: sub}
}

// DelayStage hands every value to Scheduler and delivers it after Duration.
type DelayStage struct {
	Duration  time.Duration
	Scheduler Scheduler
}

func (DelayStage) Kind() StageKind { return KindDelay }
func (s DelayStage) String() string {
	return fmt.Sprintf("%s(%s)", KindDelay, s.Duration)
}

// validate checks fields by hand: struct tags would descend into the
// scheduler's concrete type.
func (s DelayStage) validate() error {
	return validation.New().
		NonNegative("duration", s.Duration).
		Present("scheduler", s.Scheduler).
		ValidateAs(errors.ErrCodeInvalidStage)
}

func (s DelayStage) wrap(down Observer, _ *subscription) Observer {
	return &delayObserver{d: s.Duration, scheduler: s.Scheduler, down: down}
}

// --- intermediate observers ---

// halt records that a stage has emitted a fault. Once halted, the stage
// drops every signal it receives.
type halt struct {
	done atomic.Bool
}

func (h *halt) halted() bool { return h.done.Load() }

// trip marks the stage halted and reports whether this call did it.
func (h *halt) trip() bool { return h.done.CompareAndSwap(false, true) }

type mapObserver struct {
	halt
	fn   MapFunc
	down Observer
	sub  *subscription
}

func (o *mapObserver) Next(value any) {
	if o.halted() {
		return
	}
	var out any
	err := callSafely(KindMap, value, func() (ferr error) {
		out, ferr = o.fn(value)
		return ferr
	})
	if err != nil {
		o.fail(err)
		return
	}
	o.down.Next(out)
}

func (o *mapObserver) Error(err error) {
	if !o.halted() {
		o.down.Error(err)
	}
}

func (o *mapObserver) Complete() {
	if !o.halted() {
		o.down.Complete()
	}
}

func (o *mapObserver) fail(err error) {
	if o.trip() {
		o.sub.fault(KindMap, err)
		o.down.Error(err)
	}
}

type filterObserver struct {
	halt
	fn   FilterFunc
	down Observer
	sub  *subscription
}

func (o *filterObserver) Next(value any) {
	if o.halted() {
		return
	}
	var keep bool
	err := callSafely(KindFilter, value, func() (ferr error) {
		keep, ferr = o.fn(value)
		return ferr
	})
	if err != nil {
		o.fail(err)
		return
	}
	if keep {
		o.down.Next(value)
	}
}

func (o *filterObserver) Error(err error) {
	if !o.halted() {
		o.down.Error(err)
	}
}

func (o *filterObserver) Complete() {
	if !o.halted() {
		o.down.Complete()
	}
}

func (o *filterObserver) fail(err error) {
	if o.trip() {
		o.sub.fault(KindFilter, err)
		o.down.Error(err)
	}
}

// callSafely runs a user function and converts a returned error or a panic
// into an OPERATOR_FAULT. Downstream calls must stay outside fn so that
// panics raised by later stages are not attributed to this one.
func callSafely(kind StageKind, value any, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.OperatorFault(string(kind), value, errors.FromPanic(r))
		}
	}()
	if ferr := fn(); ferr != nil {
		return errors.OperatorFault(string(kind), value, ferr)
	}
	return nil
}
