// Package sink provides terminal observers for rxkit streams and decorators
// that instrument them.
//
// Printer logs every signal. Recorder keeps them for later inspection:
//
//	rec := sink.NewRecorder()
//	_ = src.Subscribe(rec)
//	<-rec.Done()
//	values := rec.Values()
//
// Decorators wrap any observer without altering what it receives:
//
//	obs := sink.WithMetrics(sink.WithTracing(printer, tracer, "printer"), metrics, "printer")
package sink
