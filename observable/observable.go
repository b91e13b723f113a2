package observable

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/rxkit/errors"
	"github.com/kbukum/rxkit/logger"
)

// SubscribeFunc is a source's subscribe procedure. It calls Next zero or more
// times and then optionally exactly one of Error or Complete.
type SubscribeFunc func(Observer)

// Observable is a lazy, re-runnable producer of values.
// It is immutable: operators return a new Observable.
type Observable struct {
	source SubscribeFunc
	stages []Stage
	// err is a construction fault, reported by Subscribe.
	err error
}

// Create builds an Observable from a subscribe procedure. Nothing runs until
// Subscribe is called.
func Create(subscribe SubscribeFunc) *Observable {
	o := &Observable{source: subscribe}
	if subscribe == nil {
		o.err = errors.InvalidSource("subscribe procedure is nil")
	}
	return o
}

// Map returns an Observable emitting fn(v) for every upstream value v.
func (o *Observable) Map(fn MapFunc) *Observable {
	return o.with(MapStage{Fn: fn})
}

// Filter returns an Observable emitting only the upstream values for which fn
// reports true.
func (o *Observable) Filter(fn FilterFunc) *Observable {
	return o.with(FilterStage{Fn: fn})
}

// Delay returns an Observable delivering every upstream value no earlier than
// d after it was received, using DefaultScheduler.
func (o *Observable) Delay(d time.Duration) *Observable {
	return o.DelayOn(d, DefaultScheduler)
}

// DelayOn is Delay with an explicit scheduler.
func (o *Observable) DelayOn(d time.Duration, s Scheduler) *Observable {
	return o.with(DelayStage{Duration: d, Scheduler: s})
}

// Pipe appends already-built stage descriptors, in order.
func (o *Observable) Pipe(stages ...Stage) *Observable {
	out := o
	for _, s := range stages {
		out = out.with(s)
	}
	return out
}

// with returns a copy of o with stage appended. The first invalid stage is
// remembered and reported by Subscribe.
func (o *Observable) with(stage Stage) *Observable {
	stages := make([]Stage, len(o.stages), len(o.stages)+1)
	copy(stages, o.stages)
	out := &Observable{
		source: o.source,
		stages: append(stages, stage),
		err:    o.err,
	}
	if out.err != nil {
		return out
	}
	if stage == nil {
		out.err = errors.InvalidStage("unknown", "stage is nil").WithDetail("position", len(o.stages))
		return out
	}
	if err := stage.validate(); err != nil {
		appErr, _ := errors.AsAppError(err)
		out.err = appErr.
			WithDetail("stage", string(stage.Kind())).
			WithDetail("position", len(o.stages))
	}
	return out
}

// Stages returns a copy of the chain's stage descriptors, source first.
func (o *Observable) Stages() []Stage {
	out := make([]Stage, len(o.stages))
	copy(out, o.stages)
	return out
}

// Err returns the construction fault that Subscribe would report, if any.
func (o *Observable) Err() error {
	return o.err
}

// String renders the chain, e.g. "source -> map -> filter -> delay(2s)".
func (o *Observable) String() string {
	parts := make([]string, 0, len(o.stages)+1)
	parts = append(parts, "source")
	for _, s := range o.stages {
		if s == nil {
			parts = append(parts, "<nil>")
			continue
		}
		parts = append(parts, s.String())
	}
	return strings.Join(parts, " -> ")
}

// Subscribe runs the chain: it wraps observer once per stage and invokes the
// source procedure with the outermost wrapper. It returns only configuration
// faults; stream errors are delivered to observer.Error.
func (o *Observable) Subscribe(observer Observer) error {
	if o == nil {
		return errors.InvalidSource("observable is nil")
	}
	if o.err != nil {
		return o.err
	}
	if err := CheckObserver(observer); err != nil {
		return err
	}

	sub := &subscription{
		id:  uuid.NewString(),
		log: logger.Get("observable"),
	}
	sub.log.Debug("subscribe", logger.Fields(
		logger.FieldSubscriptionID, sub.id,
		logger.FieldChain, o.String(),
	))

	sink := observer
	for i := len(o.stages) - 1; i >= 0; i-- {
		sink = o.stages[i].wrap(sink, sub)
	}
	o.source(sink)
	return nil
}

// subscription carries per-Subscribe context shared by the stages of one chain
// instance.
type subscription struct {
	id  string
	log *logger.Logger
}

func (s *subscription) fault(kind StageKind, err error) {
	s.log.Debug("operator fault", logger.Fields(
		logger.FieldSubscriptionID, s.id,
		logger.FieldStage, string(kind),
		logger.FieldError, err.Error(),
	))
}
