package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration faults, surfaced by Subscribe before any source runs.
const (
	// ErrCodeInvalidObserver indicates a nil or incomplete observer.
	ErrCodeInvalidObserver ErrorCode = "INVALID_OBSERVER"
	// ErrCodeInvalidStage indicates an operator stage that failed validation.
	ErrCodeInvalidStage ErrorCode = "INVALID_STAGE"
	// ErrCodeInvalidSource indicates a missing subscribe procedure.
	ErrCodeInvalidSource ErrorCode = "INVALID_SOURCE"
	// ErrCodeInvalidConfig indicates an invalid configuration value.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Stream faults, delivered through the Error channel.
const (
	// ErrCodeOperatorFault indicates a map or filter function failed.
	ErrCodeOperatorFault ErrorCode = "OPERATOR_FAULT"
	// ErrCodeUpstream marks an error signalled by a source.
	ErrCodeUpstream ErrorCode = "UPSTREAM"
	// ErrCodeInvalidEvent indicates an event that could not be decoded.
	ErrCodeInvalidEvent ErrorCode = "INVALID_EVENT"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var configurationCodes = map[ErrorCode]bool{
	ErrCodeInvalidObserver: true,
	ErrCodeInvalidStage:    true,
	ErrCodeInvalidSource:   true,
	ErrCodeInvalidConfig:   true,
}

// IsConfigurationCode reports whether code describes a fault in how a chain
// or program was assembled, as opposed to a fault raised while it ran.
func IsConfigurationCode(code ErrorCode) bool {
	return configurationCodes[code]
}
