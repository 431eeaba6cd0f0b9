package display

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

// registry maps backend names to factories. Backend packages fill it from
// init; exporters and commands pick a backend by name at run time.
type registry struct {
	mu        sync.RWMutex
	factories map[string]BackendFactory
}

var backends registry

func (r *registry) add(name string, factory BackendFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case factory == nil:
		panic("display: nil factory for backend " + name)
	case r.factories[name] != nil:
		panic("display: backend " + name + " registered twice")
	}
	if r.factories == nil {
		r.factories = make(map[string]BackendFactory)
	}
	r.factories[name] = factory
}

func (r *registry) lookup(name string) BackendFactory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.factories[name]
}

func (r *registry) remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
}

func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.factories))
}

// Register makes a backend available to NewBackend under name. Backend
// packages call it from init, so importing the package is enough:
//
//	import _ "github.com/gogpu/ink/display/raster"
//
// Register panics if factory is nil or name is taken.
func Register(name string, factory BackendFactory) {
	backends.add(name, factory)
}

// Unregister removes a backend. Unknown names are ignored.
func Unregister(name string) {
	backends.remove(name)
}

// NewBackend creates a fresh backend by its registered name. The error for
// an unknown name wraps ErrUnknownBackend and lists what is available.
func NewBackend(name string) (Backend, error) {
	factory := backends.lookup(name)
	if factory == nil {
		return nil, fmt.Errorf("%w %q (registered: %v)", ErrUnknownBackend, name, backends.names())
	}
	return factory(), nil
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	return backends.names()
}

// IsRegistered reports whether a backend is registered under name.
func IsRegistered(name string) bool {
	return backends.lookup(name) != nil
}
