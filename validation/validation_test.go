package validation

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/rxkit/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("name", "rxdemo")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("name", "   ")
	if !v2.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

type nopScheduler struct{}

func TestValidatorPresent(t *testing.T) {
	var typedNil *nopScheduler
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"zero-size struct", nopScheduler{}, false},
		{"pointer", &nopScheduler{}, false},
		{"func", func() {}, false},
		{"nil", nil, true},
		{"typed nil pointer", typedNil, true},
		{"nil func", (func())(nil), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New().Present("scheduler", tc.value)
			if v.HasErrors() != tc.wantErr {
				t.Errorf("Present(%v) errors = %v, wantErr %v", tc.value, v.Errors(), tc.wantErr)
			}
		})
	}
}

func TestValidatorChaining(t *testing.T) {
	v := New().
		NonNegative("duration", -time.Second).
		NonNegative("delay", 0).
		OneOf("format", "xml", []string{"json", "console"}).
		Custom(false, "values", "must not be empty")
	if len(v.Errors()) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(v.Errors()), v.Errors())
	}

	err := v.Validate()
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
	if !strings.Contains(err.Error(), "duration: must not be negative (got -1s)") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestValidatorNested(t *testing.T) {
	inner := New().Required("name", "").Validate()
	v := New().
		Nested("server", nil).
		Nested("service", inner).
		Nested("logging", fmt.Errorf("bad level"))

	want := []FieldError{
		{Field: "service.name", Message: "is required"},
		{Field: "logging", Message: "bad level"},
	}
	got := v.Errors()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("error %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestValidatorValidateAs_NoErrors(t *testing.T) {
	if err := New().ValidateAs(errors.ErrCodeInvalidStage); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

type stageFixture struct {
	Fn       func(any) any `validate:"required"`
	Duration time.Duration `validate:"gte=0"`
}

func TestValidateAs_StructTags(t *testing.T) {
	tests := []struct {
		name    string
		in      stageFixture
		wantErr bool
		field   string
	}{
		{"valid", stageFixture{Fn: func(v any) any { return v }, Duration: time.Second}, false, ""},
		{"zero duration is valid", stageFixture{Fn: func(v any) any { return v }}, false, ""},
		{"missing fn", stageFixture{Duration: time.Second}, true, "fn"},
		{"negative duration", stageFixture{Fn: func(v any) any { return v }, Duration: -time.Millisecond}, true, "duration"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAs(tc.in, errors.ErrCodeInvalidStage)
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != errors.ErrCodeInvalidStage {
				t.Errorf("expected INVALID_STAGE, got %s", appErr.Code)
			}
			fields, _ := appErr.Details["fields"].([]FieldError)
			if len(fields) != 1 || fields[0].Field != tc.field {
				t.Errorf("expected field %q, got %v", tc.field, fields)
			}
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"OnNext":   "on_next",
		"Duration": "duration",
		"fn":       "fn",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
