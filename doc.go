// Package cradle provides a small, type-keyed service registry for Go.
//
// This repository is a single library package built around one idea:
// resolve abstract (interface) types to concrete implementations at runtime,
// with the wiring declared once in a composition root.
//
//   - container: the registry itself — registration by concrete type,
//     pre-built instance, or creator function, crossed with transient and
//     singleton lifetimes, plus optional and required resolution.
//
// The goal is to keep wiring explicit and local: construct one Container in
// your composition root (usually main), register everything there, then pass
// the container — never a process-wide singleton — to whatever needs to
// resolve. Multiple independent containers are cheap, which keeps tests
// isolated.
//
// Start with the runnable example under examples/basic for end-to-end
// wiring style.
//
// See subpackages:
//   - container: the registry library
//   - examples/*: runnable composition-root examples
package cradle
