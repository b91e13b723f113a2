// Package eventsource adapts externally triggered events into an rxkit
// Observable.
//
// A Hub is a registry of listeners. Every subscription to Observable(hub)
// registers a new listener, so side effects repeat per subscription, and the
// resulting stream never completes. Events enter the hub through Dispatch or
// through the HTTP route installed by RegisterRoutes:
//
//	hub := eventsource.NewHub()
//	eventsource.RegisterRoutes(srv.Engine(), hub)
//	_ = eventsource.Observable(hub).Map(toName).Subscribe(printer)
//
//	// POST /events/click {"x": 10} now reaches printer.
package eventsource
