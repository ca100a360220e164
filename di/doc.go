// Package di provides a lifetime-aware service injector for Go.
//
// The injector is a registry that binds abstract service identities to
// construction strategies and mediates instantiation per a declared
// lifetime:
//
//   - Transient: a new instance on every lookup
//   - Scoped: one instance per active scope window (see WithScope)
//   - Singleton: one instance for the injector's lifetime
//
// Bindings are metadata only; nothing is built at registration time. A
// binding may declare named parameters, each either a Literal value or a
// Ref to another registered identity, resolved recursively at build time —
// that recursion is what makes the injector a graph builder rather than a
// flat factory.
//
// Constructor-built instances implementing LoggerAware are enriched with
// the registered logger capability after construction, best-effort.
//
// Design notes
//
// The injector holds no package-level state: create it with New and pass
// the handle around. Strategies receive resolved Args and must not call
// back into the injector. Errors are small typed structs assertable with
// errors.As; construction failures of any depth surface as
// InstanceCreationError wrapping the cause.
//
// Import
//
//	"github.com/sghaida/injx/di"
package di
