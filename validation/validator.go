package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/kbukum/rxkit/errors"
)

// Validator collects field errors from hand-written checks. Each rule
// returns the Validator so checks can be chained.
type Validator struct {
	errors []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{}
}

// AddError records a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

// Nested records the message of err against field when err is non-nil.
// Field errors carried by an AppError are kept with a dotted prefix.
func (v *Validator) Nested(field string, err error) *Validator {
	if err == nil {
		return v
	}
	if appErr, ok := errors.AsAppError(err); ok {
		if fields, ok := appErr.Details["fields"].([]FieldError); ok {
			for _, f := range fields {
				v.AddError(field+"."+f.Field, f.Message)
			}
			return v
		}
	}
	v.AddError(field, err.Error())
	return v
}

// HasErrors reports whether any rule failed.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns the collected field errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Validate returns an INVALID_CONFIG AppError if any rule failed.
func (v *Validator) Validate() error {
	return v.ValidateAs(errors.ErrCodeInvalidConfig)
}

// ValidateAs returns an AppError with the given code if any rule failed.
func (v *Validator) ValidateAs(code errors.ErrorCode) error {
	if !v.HasErrors() {
		return nil
	}
	return newFieldsError(code, v.errors)
}

// Required checks that a string is not blank.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// Present checks that value is neither nil nor a typed nil stored in an
// interface, such as a nil *Loop passed as a Scheduler.
func (v *Validator) Present(field string, value any) *Validator {
	if isNil(value) {
		v.AddError(field, "is required")
	}
	return v
}

// NonNegative checks that a duration is zero or positive.
func (v *Validator) NonNegative(field string, d time.Duration) *Validator {
	if d < 0 {
		v.AddError(field, fmt.Sprintf("must not be negative (got %s)", d))
	}
	return v
}

// OneOf checks that a non-empty value is one of allowed.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if value == "" {
		return v
	}
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.AddError(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom records message against field when condition is false.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func newFieldsError(code errors.ErrorCode, fields []FieldError) *errors.AppError {
	messages := make([]string, len(fields))
	for i, e := range fields {
		messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return errors.New(code, strings.Join(messages, "; ")).
		WithDetail("fields", fields)
}
