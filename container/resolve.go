package container

import "reflect"

// TryResolve looks up the service registered for Base and runs its factory.
//
// Absence is not an error: when nothing is registered for Base it returns
// (zero, false, nil). A non-nil err means a registered factory failed or a
// dependency cycle was rejected; ok is false in that case too. A bound
// factory failing because one of its own dependencies is unregistered is a
// factory failure, not absence of Base.
func TryResolve[Base any](c *Container) (Base, bool, error) {
	var zero Base
	v, bound, err := c.resolve(keyOf[Base]())
	if !bound {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	return unwrap[Base](v), true, nil
}

// Resolve looks up the service registered for Base and runs its factory.
// When nothing is registered it fails with NotRegisteredError naming the
// requested type.
func Resolve[Base any](c *Container) (Base, error) {
	var zero Base
	key := keyOf[Base]()
	v, bound, err := c.resolve(key)
	if !bound {
		return zero, NotRegisteredError{Type: key}
	}
	if err != nil {
		return zero, err
	}
	return unwrap[Base](v), nil
}

// MustResolve is Resolve or panic. Useful in composition roots and tests
// where a missing registration should fail fast.
func MustResolve[Base any](c *Container) Base {
	v, err := Resolve[Base](c)
	if err != nil {
		panic(err)
	}
	return v
}

// IsBound reports whether anything is registered for Base.
func IsBound[Base any](c *Container) bool {
	_, ok := c.lookup(keyOf[Base]())
	return ok
}

// Resolved reports whether the singleton registered for Base has been
// materialized. It is always false for transient registrations.
func Resolved[Base any](c *Container) bool {
	co := c.core
	co.mu.RLock()
	s, ok := co.singletons[keyOf[Base]()]
	co.mu.RUnlock()
	return ok && s.ready()
}

// LifetimeOf returns the lifetime policy registered for Base.
func LifetimeOf[Base any](c *Container) (Lifetime, bool) {
	b, ok := c.lookup(keyOf[Base]())
	if !ok {
		return 0, false
	}
	return b.lifetime, true
}

// unwrap asserts the erased value back to the abstract type it was
// registered under. Every registration path ties the stored factory to
// Base's key, so a mismatch here is an internal invariant violation, not a
// caller mistake; it panics rather than returning a corrupt value. A nil
// erased value stays nil: that is what the caller registered.
func unwrap[Base any](v any) Base {
	b, ok := v.(Base)
	if !ok && v != nil {
		panic("container: erased value for " + keyOf[Base]().String() +
			" has wrong dynamic type " + reflect.TypeOf(v).String())
	}
	return b
}
