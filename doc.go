// Package injx is a small lifecycle-driven dependency injection container.
//
// The library lives in the di subpackage: a registry of service identities
// bound to construction strategies (constructors or factories), resolved on
// demand with Transient, Scoped, or Singleton lifetimes, including recursive
// resolution of declared parameter references and best-effort logger
// enrichment of constructed instances.
//
// Wiring stays declarative and in-process: no code generation, no wire
// protocol, no reflection over constructor signatures.
//
// See subpackages:
//   - di: the injector itself
//   - examples: reference domain services shared by the runnable demos
//   - examples/basic, examples/scopes: runnable composition roots
package injx
