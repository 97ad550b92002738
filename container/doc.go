// Package container provides a type-keyed service registry with transient
// and singleton lifetimes.
//
// The container maps abstract (interface) types to factories. Registration
// happens once, in a composition root; resolution happens anywhere a
// container is passed. Keys are derived from Go type identity via reflect,
// never from user-supplied strings, so two registrations of the same
// abstract type can never collide by typo.
//
// # Registration
//
// Three shapes, each crossed with both lifetimes:
//
//   - Concrete type with a usable zero value:
//
//     _ = container.AddSingleton[Logger, ConsoleLogger](c)
//
//   - Pre-built instance:
//
//     _ = container.AddSingletonInstance[*Config](c, cfg)
//
//   - Creator function, either zero-argument or receiving the container so
//     it can resolve its own dependencies:
//
//     _ = container.AddTransientProvider(c, func(c *container.Container) (*Mailer, error) {
//         lg, err := container.Resolve[Logger](c)
//         if err != nil {
//             return nil, err
//         }
//         return NewMailer(lg), nil
//     })
//
// The creator shapes are the escape hatch for concrete types whose
// construction needs arguments; the concrete-type shape assumes new(Derived)
// is a valid instance. Registering the same abstract type twice silently
// replaces the earlier registration (last write wins).
//
// # Lifetimes
//
// Transient runs the factory on every resolution. Singleton runs it at most
// once per container, on first demand, and shares the result; construction
// is deferred so a singleton may depend on services registered after it, as
// long as they are in place before it is first resolved. Singleton
// memoization is safe under concurrent resolution.
//
// # Resolution
//
//	lg, ok, err := container.TryResolve[Logger](c) // absence is not an error
//	lg, err := container.Resolve[Logger](c)        // absence is NotRegisteredError
//	lg := container.MustResolve[Logger](c)         // absence panics
//
// A factory that resolves a type already under construction in the same
// chain fails with DependencyCycleError instead of recursing forever.
// Detection is per resolution chain: a mutual singleton cycle whose two
// ends are first resolved from different goroutines at the same time can
// block instead of erroring, so treat a reported cycle as a composition
// defect to remove, not a condition to handle.
//
// # Generic functions, not methods
//
// The API is package-level functions taking the *Container because Go does
// not allow methods to introduce type parameters.
//
// # Import
//
//	"github.com/sghaida/cradle/container"
package container
