package container

import (
	"errors"
	"reflect"
)

// ErrNilCreator is returned when a registration is attempted with a nil
// creator function.
var ErrNilCreator = errors.New("container: nil creator function")

// NotRegisteredError is returned by Resolve when no service is registered
// for the requested abstract type.
//
// TryResolve never returns it; absence is signalled through its ok result.
type NotRegisteredError struct {
	// Type is the abstract type that was requested.
	Type reflect.Type
}

// Error implements the error interface.
func (e NotRegisteredError) Error() string {
	// Example: container: no service registered for examples.Logger
	return "container: no service registered for " + e.Type.String()
}

// InvalidBindingError is returned when a concrete type is registered against
// an abstract type it does not satisfy.
type InvalidBindingError struct {
	// Base is the abstract type the registration was keyed by.
	Base reflect.Type

	// Concrete is the handle type the registration would have produced.
	Concrete reflect.Type
}

// Error implements the error interface.
func (e InvalidBindingError) Error() string {
	// Example: container: *mypkg.Mailer does not implement mypkg.Logger
	return "container: " + e.Concrete.String() + " does not implement " + e.Base.String()
}

// DependencyCycleError is returned when a resolution chain requests a type
// that is already under construction in the same chain.
type DependencyCycleError struct {
	// Type is the abstract type whose construction was re-entered.
	Type reflect.Type
}

// Error implements the error interface.
func (e DependencyCycleError) Error() string {
	// Example: container: dependency cycle detected while resolving mypkg.Logger
	return "container: dependency cycle detected while resolving " + e.Type.String()
}
