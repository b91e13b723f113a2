package logger

import (
	"sync"
)

// components holds per-component loggers. Pinned loggers are returned as
// is; derived ones are rebuilt when the global logger changes.
var components = &componentRegistry{
	pinned:  make(map[string]*Logger),
	derived: make(map[string]*Logger),
}

type componentRegistry struct {
	mu      sync.Mutex
	pinned  map[string]*Logger
	derived map[string]*Logger
	base    *Logger
}

// Register pins l as the logger for a component. It survives Init.
func Register(name string, l *Logger) {
	components.mu.Lock()
	defer components.mu.Unlock()
	components.pinned[name] = l
}

// Unregister removes a pinned logger so Get derives one from the global
// logger again.
func Unregister(name string) {
	components.mu.Lock()
	defer components.mu.Unlock()
	delete(components.pinned, name)
}

// Get returns the logger for a component: the pinned one if registered,
// otherwise the global logger tagged with the component name.
func Get(name string) *Logger {
	global := GetGlobalLogger()

	components.mu.Lock()
	defer components.mu.Unlock()
	if l, ok := components.pinned[name]; ok {
		return l
	}
	if components.base != global {
		clear(components.derived)
		components.base = global
	}
	l, ok := components.derived[name]
	if !ok {
		l = global.WithComponent(name)
		components.derived[name] = l
	}
	return l
}
