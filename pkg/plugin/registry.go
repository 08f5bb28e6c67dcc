// Package plugin provides the registration bookkeeping for Lumen
// plugins. A Registry is an explicit value owned by the application
// context and passed by reference to wherever installation occurs;
// there is no process-wide registry.
package plugin

import (
	"sort"
	"sync"
)

// Registration describes one installed plugin.
type Registration struct {
	// Name is the stable plugin identifier.
	Name string

	// Version is the plugin's semantic version string.
	Version string

	// Description is a human-readable summary.
	Description string

	// Options is the plugin's effective options bag.
	Options any
}

// Registry maps plugin names to their registrations.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Registration)}
}

// Register records a plugin, replacing any prior registration under the
// same name.
func (r *Registry) Register(reg Registration) {
	if r == nil || reg.Name == "" {
		return
	}
	r.mu.Lock()
	r.entries[reg.Name] = reg
	r.mu.Unlock()
}

// Deregister removes a registration and reports whether it existed.
func (r *Registry) Deregister(name string) bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; !ok {
		return false
	}
	delete(r.entries, name)
	return true
}

// Get returns the registration for a plugin name.
func (r *Registry) Get(name string) (Registration, bool) {
	if r == nil {
		return Registration{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.entries[name]
	return reg, ok
}

// Names returns the registered plugin names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
