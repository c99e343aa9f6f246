package registry

import (
	"sort"
	"sync"

	"github.com/zclconf/go-cty/cty"
)

// Module is the interface for a self-contained bundle of types and coercion
// rules. The application collects modules at startup and registers each one
// into the shared registry.
type Module interface {
	Register(r *Registry)
}

// Registry holds the type descriptors for a single application instance.
//
// Registration is expected to happen once, at startup, before any
// concurrent use. The registry still guards all access with a mutex so that
// a late writer cannot expose a partially-built rule list to readers.
type Registry struct {
	mu    sync.RWMutex
	types map[TypeName]*TypeDescriptor
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		types: make(map[TypeName]*TypeDescriptor),
	}
}

// RegisterType ensures a descriptor exists for name and returns it. It is
// idempotent: if name is already registered the existing descriptor is
// returned and target is ignored, so independent modules may share a type.
//
// The returned descriptor is a registration-time handle. For introspection
// that is safe against concurrent writers, use Describe.
func (r *Registry) RegisterType(name TypeName, target cty.Type) *TypeDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d, ok := r.types[name]; ok {
		return d
	}
	d := &TypeDescriptor{Name: name, Target: target}
	r.types[name] = d
	return d
}

// AddCoercion appends rule to the named type's ordered rule list. It fails
// with *UnknownTypeError if name was never registered, leaving the registry
// unmodified.
func (r *Registry) AddCoercion(name TypeName, rule CoercionRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.types[name]
	if !ok {
		return &UnknownTypeError{Name: name}
	}
	d.rules = append(d.rules, rule)
	return nil
}

// IsRegistered reports whether name has a descriptor.
func (r *Registry) IsRegistered(name TypeName) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.types[name]
	return ok
}

// Describe returns a snapshot of the named descriptor. The snapshot's rule
// list is a copy; mutating it does not affect the registry.
func (r *Registry) Describe(name TypeName) (*TypeDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.types[name]
	if !ok {
		return nil, &UnknownTypeError{Name: name}
	}
	return &TypeDescriptor{Name: d.Name, Target: d.Target, rules: d.Rules()}, nil
}

// TypeNames returns all registered names in lexical order.
func (r *Registry) TypeNames() []TypeName {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]TypeName, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
