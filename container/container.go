package container

import (
	"reflect"
	"sort"
	"sync"
)

// factory builds a type-erased instance. The container it receives is the
// per-chain view, so creators that resolve their own dependencies are
// covered by cycle detection.
type factory func(c *Container) (any, error)

// binding holds a registered factory together with its lifetime policy.
type binding struct {
	factory  factory
	lifetime Lifetime
}

// core is the shared registry state. Every Container handle over the same
// core sees the same registrations and singletons.
type core struct {
	mu sync.RWMutex

	// abstract type -> registered factory
	services map[reflect.Type]*binding

	// abstract type -> singleton memoization cell; only singleton-lifetime
	// keys ever get an entry here
	singletons map[reflect.Type]*cell
}

// Container is the service registry. The zero value is not usable; create
// one with New.
//
// A Container is a handle over shared state: the handles passed to creator
// functions during resolution see the same registrations, plus the set of
// types currently under construction in that chain.
type Container struct {
	core *core

	// resolving is non-nil only on handles created for a resolution chain.
	resolving map[reflect.Type]bool
}

// New creates an empty container.
func New() *Container {
	return &Container{
		core: &core{
			services:   make(map[reflect.Type]*binding),
			singletons: make(map[reflect.Type]*cell),
		},
	}
}

// add stores a binding under key, silently replacing any previous
// registration. A replaced singleton's materialized instance is discarded so
// the new factory governs every later resolution.
func (c *Container) add(key reflect.Type, lt Lifetime, fn factory) {
	co := c.core
	co.mu.Lock()
	co.services[key] = &binding{factory: fn, lifetime: lt}
	delete(co.singletons, key)
	co.mu.Unlock()
}

func (c *Container) lookup(key reflect.Type) (*binding, bool) {
	co := c.core
	co.mu.RLock()
	b, ok := co.services[key]
	co.mu.RUnlock()
	return b, ok
}

// resolve turns a type key into a type-erased instance. The bound result
// reports whether the key itself has a registration, out-of-band from err,
// so callers can tell top-level absence apart from a registered factory
// that failed — a factory error may itself carry a NotRegisteredError for
// one of its dependencies.
func (c *Container) resolve(key reflect.Type) (v any, bound bool, err error) {
	if c.resolving[key] {
		return nil, true, DependencyCycleError{Type: key}
	}
	b, ok := c.lookup(key)
	if !ok {
		return nil, false, nil
	}
	if b.lifetime == Singleton {
		v, err = c.cellFor(key).materialize(func() (any, error) {
			return c.invoke(key, b)
		})
		return v, true, err
	}
	v, err = c.invoke(key, b)
	return v, true, err
}

// invoke runs the factory against a handle whose resolving set includes key.
// The set is copied per invocation so concurrent chains never share it.
func (c *Container) invoke(key reflect.Type, b *binding) (any, error) {
	chain := make(map[reflect.Type]bool, len(c.resolving)+1)
	for k := range c.resolving {
		chain[k] = true
	}
	chain[key] = true
	return b.factory(&Container{core: c.core, resolving: chain})
}

// cellFor returns the memoization cell for key, creating it on first use.
func (c *Container) cellFor(key reflect.Type) *cell {
	co := c.core
	co.mu.RLock()
	s, ok := co.singletons[key]
	co.mu.RUnlock()
	if ok {
		return s
	}

	co.mu.Lock()
	defer co.mu.Unlock()
	if s, ok = co.singletons[key]; ok {
		return s
	}
	s = &cell{}
	co.singletons[key] = s
	return s
}

// Services returns the abstract types with a registration, sorted by type
// name. Useful for debugging a composition root.
func (c *Container) Services() []reflect.Type {
	co := c.core
	co.mu.RLock()
	keys := make([]reflect.Type, 0, len(co.services))
	for k := range co.services {
		keys = append(keys, k)
	}
	co.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}
