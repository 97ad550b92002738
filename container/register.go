package container

import "reflect"

// keyOf derives the registry key for a type parameter. Going through a
// typed nil pointer keeps it working for interface types, where
// reflect.TypeOf of a value would report the dynamic type instead.
func keyOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddTransient registers Derived as the implementation of Base with
// transient lifetime: every resolution of Base returns new(Derived).
//
// This shape assumes Derived's zero value is usable. Concrete types that
// need constructor arguments should be registered through AddTransientFunc
// or AddTransientProvider instead.
//
// It returns InvalidBindingError when *Derived does not satisfy Base. Go
// cannot express that constraint between two type parameters, so the check
// runs eagerly at registration, before anything can resolve.
func AddTransient[Base any, Derived any](c *Container) error {
	return addConcrete[Base, Derived](c, Transient)
}

// AddSingleton registers Derived as the implementation of Base with
// singleton lifetime. Construction is deferred to the first resolution of
// Base, so dependencies of Derived may be registered later, as long as they
// are in place before Base is first resolved.
//
// It returns InvalidBindingError when *Derived does not satisfy Base.
func AddSingleton[Base any, Derived any](c *Container) error {
	return addConcrete[Base, Derived](c, Singleton)
}

func addConcrete[Base any, Derived any](c *Container, lt Lifetime) error {
	base := keyOf[Base]()
	concrete := reflect.PointerTo(keyOf[Derived]())
	if !concrete.AssignableTo(base) {
		return InvalidBindingError{Base: base, Concrete: concrete}
	}
	c.add(base, lt, func(*Container) (any, error) {
		return new(Derived), nil
	})
	return nil
}

// AddTransientInstance registers a pre-built value under T with transient
// lifetime. When v is a pointer, every resolution returns a fresh shallow
// copy of the value it points at; otherwise the boxed value itself is
// returned and copied on unwrap. Nested pointers keep aliasing the
// original — deep-copy semantics are the caller's responsibility.
func AddTransientInstance[T any](c *Container, v T) error {
	c.add(keyOf[T](), Transient, func(*Container) (any, error) {
		return cloneHandle(v), nil
	})
	return nil
}

// AddSingletonInstance registers a pre-built value under T with singleton
// lifetime: every resolution of T returns v itself.
func AddSingletonInstance[T any](c *Container, v T) error {
	c.add(keyOf[T](), Singleton, func(*Container) (any, error) {
		return v, nil
	})
	return nil
}

// AddTransientFunc registers create as the factory for T with transient
// lifetime; create runs on every resolution of T.
func AddTransientFunc[T any](c *Container, create func() (T, error)) error {
	if create == nil {
		return ErrNilCreator
	}
	c.add(keyOf[T](), Transient, func(*Container) (any, error) {
		v, err := create()
		if err != nil {
			return nil, err
		}
		return v, nil
	})
	return nil
}

// AddSingletonFunc registers create as the factory for T with singleton
// lifetime; create runs at most once, on the first resolution of T.
func AddSingletonFunc[T any](c *Container, create func() (T, error)) error {
	if create == nil {
		return ErrNilCreator
	}
	c.add(keyOf[T](), Singleton, func(*Container) (any, error) {
		v, err := create()
		if err != nil {
			return nil, err
		}
		return v, nil
	})
	return nil
}

// AddTransientProvider registers create as the factory for T with transient
// lifetime. create receives the container and may resolve its own
// dependencies from it; resolving T itself (directly or through a chain of
// providers) fails with DependencyCycleError.
func AddTransientProvider[T any](c *Container, create func(*Container) (T, error)) error {
	if create == nil {
		return ErrNilCreator
	}
	c.add(keyOf[T](), Transient, func(view *Container) (any, error) {
		v, err := create(view)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
	return nil
}

// AddSingletonProvider registers create as the factory for T with singleton
// lifetime. create receives the container, runs at most once, and may
// resolve its own dependencies from it.
func AddSingletonProvider[T any](c *Container, create func(*Container) (T, error)) error {
	if create == nil {
		return ErrNilCreator
	}
	c.add(keyOf[T](), Singleton, func(view *Container) (any, error) {
		v, err := create(view)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
	return nil
}

// cloneHandle returns a fresh handle derived from v: a shallow copy of the
// pointed-at value for non-nil pointers, the boxed value itself otherwise.
func cloneHandle(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		cp := reflect.New(rv.Elem().Type())
		cp.Elem().Set(rv.Elem())
		return cp.Interface()
	}
	return v
}
