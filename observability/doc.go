// Package observability wires OpenTelemetry tracing and metrics for rxkit
// streams.
//
// Exporters speak OTLP over HTTP. Leaving Config.Endpoint empty disables
// export and keeps the global no-op providers:
//
//	shutdown, err := observability.Setup(ctx, cfg)
//	defer shutdown(ctx)
//
// Streams are instrumented through StreamMetrics and the span helpers:
//
//	metrics, err := observability.NewStreamMetrics(observability.Meter("rxdemo"))
//	metrics.RecordSignal(ctx, "printer", observability.SignalNext)
//
// Health:
//
//	health := observability.CheckHealth(ctx, "rxdemo", "1.0.0", hub)
package observability
