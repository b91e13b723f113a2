package observable

// FromSlice emits every value synchronously, then completes. The slice is
// copied, so later changes by the caller are not observed.
func FromSlice(values []any) *Observable {
	items := make([]any, len(values))
	copy(items, values)
	return Create(func(o Observer) {
		for _, v := range items {
			o.Next(v)
		}
		o.Complete()
	})
}

// FromValues is FromSlice over its arguments.
func FromValues(values ...any) *Observable {
	return FromSlice(values)
}

// FromChan forwards each value received from ch and completes when ch is
// closed. Subscribe blocks until then.
func FromChan[T any](ch <-chan T) *Observable {
	return Create(func(o Observer) {
		for v := range ch {
			o.Next(v)
		}
		o.Complete()
	})
}

// Throw emits err and nothing else.
func Throw(err error) *Observable {
	return Create(func(o Observer) {
		o.Error(err)
	})
}
