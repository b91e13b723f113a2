package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/rxkit/logger"
)

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The provider should be shut down on exit.
func InitMeter(ctx context.Context, cfg *Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Get("observability").Info("meter initialized", logger.Fields(
		"service", cfg.ServiceName,
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Shutdown flushes and stops the providers installed by Setup.
type Shutdown func(ctx context.Context) error

// Setup validates cfg and installs the tracer and meter providers. With no
// endpoint configured it installs nothing and returns a no-op Shutdown.
func Setup(ctx context.Context, cfg *Config) (Shutdown, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Enabled() {
		logger.Get("observability").Debug("telemetry export disabled")
		return func(context.Context) error { return nil }, nil
	}

	tp, err := InitTracer(ctx, cfg)
	if err != nil {
		return nil, err
	}
	mp, err := InitMeter(ctx, cfg)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}

	return func(ctx context.Context) error {
		terr := tp.Shutdown(ctx)
		merr := mp.Shutdown(ctx)
		if terr != nil {
			return fmt.Errorf("shutting down tracer: %w", terr)
		}
		if merr != nil {
			return fmt.Errorf("shutting down meter: %w", merr)
		}
		return nil
	}, nil
}

// Signal names recorded by StreamMetrics.
const (
	SignalNext     = "next"
	SignalError    = "error"
	SignalComplete = "complete"
)

// StreamMetrics holds the instruments recorded for observers.
type StreamMetrics struct {
	signals       metric.Int64Counter
	subscriptions metric.Int64Counter
	latency       metric.Float64Histogram
}

// NewStreamMetrics creates stream instruments on the given meter.
func NewStreamMetrics(meter metric.Meter) (*StreamMetrics, error) {
	signals, err := meter.Int64Counter("stream.signals",
		metric.WithDescription("Signals delivered to observers, by signal and observer"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.signals counter: %w", err)
	}

	subscriptions, err := meter.Int64Counter("stream.subscriptions",
		metric.WithDescription("Observers subscribed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.subscriptions counter: %w", err)
	}

	latency, err := meter.Float64Histogram("stream.delivery.latency",
		metric.WithDescription("Time from subscription to each delivered signal"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.delivery.latency histogram: %w", err)
	}

	return &StreamMetrics{
		signals:       signals,
		subscriptions: subscriptions,
		latency:       latency,
	}, nil
}

// RecordSubscription counts one subscribed observer.
func (m *StreamMetrics) RecordSubscription(ctx context.Context, observer string) {
	m.subscriptions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("observer", observer),
	))
}

// RecordSignal counts one delivered signal.
func (m *StreamMetrics) RecordSignal(ctx context.Context, observer, signal string) {
	m.signals.Add(ctx, 1, metric.WithAttributes(
		attribute.String("observer", observer),
		attribute.String("signal", signal),
	))
}

// RecordLatency records how long after subscription a signal arrived.
func (m *StreamMetrics) RecordLatency(ctx context.Context, observer, signal string, since time.Duration) {
	m.latency.Record(ctx, since.Seconds(), metric.WithAttributes(
		attribute.String("observer", observer),
		attribute.String("signal", signal),
	))
}
