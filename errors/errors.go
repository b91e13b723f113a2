package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified rxkit error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is matches another *AppError carrying the same code, so that
// errors.Is(err, &AppError{Code: ErrCodeOperatorFault}) works through wrapping.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Constructors ---

// InvalidObserver creates an AppError for an observer that cannot receive signals.
func InvalidObserver(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidObserver,
		Message: fmt.Sprintf("invalid observer: %s", reason),
	}
}

// InvalidStage creates an AppError for an operator stage that failed validation.
func InvalidStage(stage, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidStage,
		Message: fmt.Sprintf("invalid %s stage: %s", stage, reason),
		Details: map[string]any{"stage": stage},
	}
}

// InvalidSource creates an AppError for an observable without a subscribe procedure.
func InvalidSource(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidSource,
		Message: fmt.Sprintf("invalid source: %s", reason),
	}
}

// InvalidConfig creates an AppError for a configuration value that failed validation.
func InvalidConfig(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidConfig, Message: message}
}

// OperatorFault creates an AppError for a map or filter function that
// returned an error or panicked. The value that caused the fault is kept in
// Details under "value".
func OperatorFault(stage string, value any, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeOperatorFault,
		Message: fmt.Sprintf("%s function failed", stage),
		Details: map[string]any{"stage": stage, "value": value},
		Cause:   cause,
	}
}

// Upstream tags an error signalled by a source.
func Upstream(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeUpstream,
		Message: "source signalled an error",
		Cause:   cause,
	}
}

// InvalidEvent creates an AppError for an inbound event that cannot be
// dispatched.
func InvalidEvent(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidEvent,
		Message: fmt.Sprintf("invalid event: %s", reason),
	}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "an unexpected error occurred",
		Cause:   cause,
	}
}

// --- Inspection ---

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}

// IsCode reports whether err's chain contains an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	return stderrors.Is(err, &AppError{Code: code})
}

// FromPanic turns a recovered panic value into an error.
func FromPanic(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
