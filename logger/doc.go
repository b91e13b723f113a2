// Package logger provides structured logging for rxkit using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. The observable core logs
// through the "observable" component at debug level only; sinks and the demo
// binary log signals at info.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("sink")
//	log.Info("next", logger.Fields(logger.FieldSignal, "next", logger.FieldValue, v))
package logger
