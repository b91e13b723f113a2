package eventsource

import (
	"github.com/kbukum/rxkit/observable"
)

// Observable returns a stream of the events dispatched through h. Each
// subscription registers its own listener; the stream never completes.
func Observable(h *Hub) *observable.Observable {
	return observable.Create(func(o observable.Observer) {
		h.AddListener(func(e Event) {
			o.Next(e)
		})
	})
}

// Names is Observable mapped to event names.
func Names(h *Hub) *observable.Observable {
	return Observable(h).Map(func(v any) (any, error) {
		return v.(Event).Name, nil
	})
}
