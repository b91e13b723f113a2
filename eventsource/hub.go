package eventsource

import (
	"context"
	"slices"
	"sync"

	"github.com/kbukum/rxkit/logger"
	"github.com/kbukum/rxkit/observability"
)

// ListenerID identifies a registered listener.
type ListenerID uint64

// Hub fans dispatched events out to its listeners. Events are delivered one
// at a time in dispatch order, so a listener never runs concurrently with
// itself. A Dispatch made while another is delivering, including one made
// from inside a listener, is queued and delivered by the active dispatcher
// once the current event has reached every listener.
type Hub struct {
	mu        sync.RWMutex // guards listeners and nextID
	listeners map[ListenerID]func(Event)
	nextID    ListenerID

	qmu      sync.Mutex // guards queue and draining
	queue    []Event
	draining bool

	log *logger.Logger
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		listeners: make(map[ListenerID]func(Event)),
		log:       logger.Get("eventsource"),
	}
}

// AddListener registers fn and returns its ID.
func (h *Hub) AddListener(fn func(Event)) ListenerID {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.listeners[id] = fn
	total := len(h.listeners)
	h.mu.Unlock()

	h.log.Debug("listener added", logger.Fields(
		"listener_id", uint64(id),
		"total_listeners", total,
	))
	return id
}

// RemoveListener unregisters a listener. It reports whether id was known.
func (h *Hub) RemoveListener(id ListenerID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.listeners[id]; !ok {
		return false
	}
	delete(h.listeners, id)
	return true
}

// Dispatch delivers e to the registered listeners in registration order.
// When no delivery is in progress, e is delivered before Dispatch returns and
// the result is the number of listeners called. Otherwise e is queued behind
// the events already waiting and the result is the number of listeners
// registered at the time of the call.
func (h *Hub) Dispatch(e Event) int {
	h.qmu.Lock()
	if h.draining {
		h.queue = append(h.queue, e)
		h.qmu.Unlock()
		h.log.Debug("event queued", logger.Fields(
			logger.FieldEvent, e.Name,
			"event_id", e.ID.String(),
		))
		return h.Listeners()
	}
	h.draining = true
	h.qmu.Unlock()

	n := h.deliver(e)
	for {
		h.qmu.Lock()
		if len(h.queue) == 0 {
			h.draining = false
			h.qmu.Unlock()
			return n
		}
		next := h.queue[0]
		h.queue[0] = Event{}
		h.queue = h.queue[1:]
		h.qmu.Unlock()

		h.deliver(next)
	}
}

// deliver calls every current listener with e. No hub lock is held while
// listeners run.
func (h *Hub) deliver(e Event) int {
	fns := h.snapshot()
	for _, fn := range fns {
		fn(e)
	}

	h.log.Debug("event dispatched", logger.Fields(
		logger.FieldEvent, e.Name,
		"event_id", e.ID.String(),
		"listeners", len(fns),
	))
	return len(fns)
}

// Listeners returns the number of registered listeners.
func (h *Hub) Listeners() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners)
}

// CheckHealth reports the hub as up with its listener count.
func (h *Hub) CheckHealth(context.Context) observability.Health {
	return observability.Health{
		Name:    "eventsource",
		Status:  observability.HealthStatusUp,
		Details: map[string]any{"listeners": h.Listeners()},
	}
}

func (h *Hub) snapshot() []func(Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]ListenerID, 0, len(h.listeners))
	for id := range h.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fns := make([]func(Event), len(ids))
	for i, id := range ids {
		fns[i] = h.listeners[id]
	}
	return fns
}
