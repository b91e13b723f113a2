package observable

import (
	"github.com/kbukum/rxkit/errors"
	"github.com/kbukum/rxkit/validation"
)

// Observer is the three-channel sink every consumer and every intermediate
// stage implements.
type Observer interface {
	Next(value any)
	Error(err error)
	Complete()
}

// ObserverFuncs adapts three functions to the Observer interface.
// All three are required; Subscribe rejects an ObserverFuncs with a nil field.
type ObserverFuncs struct {
	OnNext     func(value any) `validate:"required"`
	OnError    func(err error) `validate:"required"`
	OnComplete func()          `validate:"required"`
}

// Next calls OnNext.
func (o ObserverFuncs) Next(value any) { o.OnNext(value) }

// Error calls OnError.
func (o ObserverFuncs) Error(err error) { o.OnError(err) }

// Complete calls OnComplete.
func (o ObserverFuncs) Complete() { o.OnComplete() }

// Validate reports a missing function as INVALID_OBSERVER.
func (o ObserverFuncs) Validate() error {
	return validation.ValidateAs(o, errors.ErrCodeInvalidObserver)
}

// validator is implemented by observers that can check themselves.
type validator interface {
	Validate() error
}

// CheckObserver rejects observers that would fail on first use: a nil
// observer, or one whose Validate method reports a fault. Observers that wrap
// another observer should implement Validate by calling CheckObserver on the
// wrapped one, so Subscribe sees through decorators.
func CheckObserver(o Observer) error {
	if o == nil {
		return errors.InvalidObserver("observer is nil")
	}
	v, ok := o.(validator)
	if !ok {
		return nil
	}
	err := v.Validate()
	if err == nil {
		return nil
	}
	if errors.IsCode(err, errors.ErrCodeInvalidObserver) {
		return err
	}
	return errors.InvalidObserver(err.Error()).WithCause(err)
}
