// Package errors provides the structured error type used across rxkit.
//
// Configuration faults (a nil observer, an invalid stage, a nil subscribe
// procedure) are reported as *AppError values from Subscribe. Faults raised by
// user-supplied operator functions are wrapped as OPERATOR_FAULT and travel
// through the stream's Error channel. Errors signalled by a source are never
// wrapped by the core; Upstream is offered to sources that want a code.
package errors
