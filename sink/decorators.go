package sink

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/rxkit/logger"
	"github.com/kbukum/rxkit/observability"
	"github.com/kbukum/rxkit/observable"
)

// WithLogging wraps an observer with debug logging of every signal.
// Elapsed time is measured from the call to WithLogging.
func WithLogging(o observable.Observer, log *logger.Logger, name string) observable.Observer {
	if log == nil {
		log = logger.Get("sink")
	}
	return &loggingObserver{
		inner: o,
		log:   log.WithFields(logger.Fields(logger.FieldObserver, name)),
		start: time.Now(),
	}
}

type loggingObserver struct {
	inner observable.Observer
	log   *logger.Logger
	start time.Time
}

// Validate checks the wrapped observer.
func (l *loggingObserver) Validate() error { return observable.CheckObserver(l.inner) }

func (l *loggingObserver) Next(value any) {
	l.log.Debug("signal", logger.Fields(
		logger.FieldSignal, observability.SignalNext,
		logger.FieldValue, value,
		logger.FieldDuration, time.Since(l.start).Milliseconds(),
	))
	l.inner.Next(value)
}

func (l *loggingObserver) Error(err error) {
	l.log.Warn("signal", logger.Fields(
		logger.FieldSignal, observability.SignalError,
		logger.FieldError, err.Error(),
		logger.FieldDuration, time.Since(l.start).Milliseconds(),
	))
	l.inner.Error(err)
}

func (l *loggingObserver) Complete() {
	l.log.Debug("signal", logger.Fields(
		logger.FieldSignal, observability.SignalComplete,
		logger.FieldDuration, time.Since(l.start).Milliseconds(),
	))
	l.inner.Complete()
}

// WithTracing wraps an observer with a span named
// "stream.subscription.{name}". The span starts now, receives one event per
// Next and ends on Error or Complete.
func WithTracing(o observable.Observer, tracer trace.Tracer, name string) observable.Observer {
	if tracer == nil {
		tracer = observability.Tracer("github.com/kbukum/rxkit/sink")
	}
	_, span := tracer.Start(context.Background(), observability.SpanSubscription+"."+name,
		trace.WithAttributes(attribute.String(observability.AttrObserver, name)),
	)
	return &tracingObserver{inner: o, span: span}
}

type tracingObserver struct {
	inner observable.Observer
	span  trace.Span

	mu    sync.Mutex
	count int
	ended bool
}

// Validate checks the wrapped observer.
func (t *tracingObserver) Validate() error { return observable.CheckObserver(t.inner) }

func (t *tracingObserver) Next(value any) {
	t.mu.Lock()
	if !t.ended {
		t.count++
		t.span.AddEvent(observability.SignalNext, trace.WithAttributes(
			observability.Attribute(observability.AttrValue, value),
		))
	}
	t.mu.Unlock()
	t.inner.Next(value)
}

func (t *tracingObserver) Error(err error) {
	t.end(err)
	t.inner.Error(err)
}

func (t *tracingObserver) Complete() {
	t.end(nil)
	t.inner.Complete()
}

func (t *tracingObserver) end(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ended {
		return
	}
	t.ended = true
	t.span.SetAttributes(attribute.Int(observability.AttrNextCount, t.count))
	if err != nil {
		observability.SetSpanError(t.span, err)
	}
	t.span.End()
}

// WithMetrics wraps an observer with StreamMetrics recording. The
// subscription is counted immediately.
func WithMetrics(o observable.Observer, metrics *observability.StreamMetrics, name string) observable.Observer {
	m := &metricsObserver{inner: o, metrics: metrics, name: name, start: time.Now()}
	metrics.RecordSubscription(context.Background(), name)
	return m
}

type metricsObserver struct {
	inner   observable.Observer
	metrics *observability.StreamMetrics
	name    string
	start   time.Time
}

func (m *metricsObserver) record(signal string) {
	ctx := context.Background()
	m.metrics.RecordSignal(ctx, m.name, signal)
	m.metrics.RecordLatency(ctx, m.name, signal, time.Since(m.start))
}

// Validate checks the wrapped observer.
func (m *metricsObserver) Validate() error { return observable.CheckObserver(m.inner) }

func (m *metricsObserver) Next(value any) {
	m.record(observability.SignalNext)
	m.inner.Next(value)
}

func (m *metricsObserver) Error(err error) {
	m.record(observability.SignalError)
	m.inner.Error(err)
}

func (m *metricsObserver) Complete() {
	m.record(observability.SignalComplete)
	m.inner.Complete()
}
