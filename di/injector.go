package di

import (
	"log/slog"
	"slices"
	"sync"
)

// Identity is the abstract key under which a binding is registered.
//
// Identities are plain interned tokens, typically defined as package-level
// constants next to the composition root:
//
//	const (
//	  ILogger   di.Identity = "ILogger"
//	  IDatabase di.Identity = "IDatabase"
//	)
type Identity string

// ID converts a string into an Identity.
func ID(name string) Identity { return Identity(name) }

// LoggerIdentity is the identity resolved for logger enrichment unless the
// injector was built with WithLoggerIdentity.
const LoggerIdentity Identity = "ILogger"

// Constructor builds an instance from resolved arguments. Constructor-built
// instances are probed for LoggerAware and enriched best-effort.
type Constructor func(args Args) (any, error)

// Factory builds an instance from resolved arguments. The result is
// returned exactly as produced; no enrichment is attempted.
type Factory func(args Args) (any, error)

// registration is the immutable metadata stored per identity.
type registration struct {
	lifetime Lifetime
	strategy any // Constructor or Factory, validated by Register
	params   Params
}

// Injector binds service identities to construction strategies and mediates
// their instantiation according to the declared lifetime.
//
// All state lives on the Injector value itself; create as many independent
// injectors as needed. Methods are safe for concurrent use: public entry
// points serialize on an injector-wide mutex, and the singleton
// check-then-build is atomic under it.
//
// Strategies receive their dependencies as resolved Args and must not call
// back into the injector; declare dependencies with Ref parameters instead.
//
// A dependency cycle between Singleton or Scoped registrations is not
// detected and recurses until the stack is exhausted.
type Injector struct {
	mu      sync.Mutex
	scopeMu sync.Mutex

	registrations map[Identity]registration
	singletons    map[Identity]any
	scoped        map[Identity]any
	inScope       bool

	loggerID Identity
	log      *slog.Logger
}

// Option configures an Injector at construction time.
type Option func(*Injector)

// WithLogger sets the slog logger used for the injector's own debug events.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(inj *Injector) { inj.log = l }
}

// WithLoggerIdentity overrides the identity resolved for logger enrichment.
func WithLoggerIdentity(id Identity) Option {
	return func(inj *Injector) { inj.loggerID = id }
}

// New creates an empty injector.
func New(opts ...Option) *Injector {
	inj := &Injector{
		registrations: make(map[Identity]registration),
		singletons:    make(map[Identity]any),
		loggerID:      LoggerIdentity,
		log:           slog.Default(),
	}
	for _, opt := range opts {
		opt(inj)
	}
	return inj
}

// BindOption configures a single registration.
type BindOption func(*registration)

// WithLifetime sets the registration's lifetime. Defaults to Transient.
func WithLifetime(l Lifetime) BindOption {
	return func(r *registration) { r.lifetime = l }
}

// WithParams sets the registration's named construction parameters.
func WithParams(p Params) BindOption {
	return func(r *registration) { r.params = p }
}

// Register stores a binding from id to a construction strategy. Nothing is
// instantiated at registration time.
//
// strategy must be a non-nil Constructor or Factory; anything else fails
// with InvalidStrategyError.
//
// Re-registering an identity silently overwrites the prior binding and
// drops any cached instance for it, so the next lookup reflects the new
// binding only.
func (inj *Injector) Register(id Identity, strategy any, opts ...BindOption) error {
	switch s := strategy.(type) {
	case Constructor:
		if s == nil {
			return InvalidStrategyError{Identity: id, GotType: typeName(strategy)}
		}
	case Factory:
		if s == nil {
			return InvalidStrategyError{Identity: id, GotType: typeName(strategy)}
		}
	default:
		return InvalidStrategyError{Identity: id, GotType: typeName(strategy)}
	}

	reg := registration{lifetime: Transient, strategy: strategy, params: Params{}}
	for _, opt := range opts {
		opt(&reg)
	}
	reg.params = reg.params.clone()

	inj.mu.Lock()
	defer inj.mu.Unlock()

	inj.registrations[id] = reg
	delete(inj.singletons, id)
	if inj.inScope {
		delete(inj.scoped, id)
	}

	inj.log.Debug("di: service registered",
		"identity", string(id),
		"lifetime", reg.lifetime.String(),
	)
	return nil
}

// GetInstance returns an instance for id according to its registered
// lifetime.
//
// Lookup failures (UnregisteredServiceError, OutOfScopeError) surface
// directly; any failure during construction is wrapped as
// InstanceCreationError with the cause preserved. A failed Singleton or
// Scoped build leaves no cache entry behind.
func (inj *Injector) GetInstance(id Identity) (any, error) {
	inj.mu.Lock()
	defer inj.mu.Unlock()
	return inj.getInstance(id)
}

// getInstance is the recursive resolver; callers hold inj.mu.
func (inj *Injector) getInstance(id Identity) (any, error) {
	reg, ok := inj.registrations[id]
	if !ok {
		return nil, UnregisteredServiceError{Identity: id}
	}

	switch reg.lifetime {
	case Singleton:
		if inst, ok := inj.singletons[id]; ok {
			return inst, nil
		}
		inst, err := inj.build(id, reg)
		if err != nil {
			return nil, err
		}
		inj.singletons[id] = inst
		inj.log.Debug("di: singleton cached", "identity", string(id))
		return inst, nil

	case Scoped:
		if !inj.inScope {
			return nil, OutOfScopeError{Identity: id}
		}
		if inst, ok := inj.scoped[id]; ok {
			return inst, nil
		}
		inst, err := inj.build(id, reg)
		if err != nil {
			return nil, err
		}
		inj.scoped[id] = inst
		inj.log.Debug("di: scoped instance cached", "identity", string(id))
		return inst, nil

	default: // Transient
		return inj.build(id, reg)
	}
}

// build produces one instance for id from its registration.
func (inj *Injector) build(id Identity, reg registration) (any, error) {
	args, err := inj.resolveParams(reg.params)
	if err != nil {
		return nil, InstanceCreationError{Identity: id, Cause: err}
	}

	switch s := reg.strategy.(type) {
	case Factory:
		inst, err := s(args)
		if err != nil {
			return nil, InstanceCreationError{Identity: id, Cause: err}
		}
		return inst, nil

	case Constructor:
		inst, err := s(args)
		if err != nil {
			return nil, InstanceCreationError{Identity: id, Cause: err}
		}
		// The logger itself is never enriched.
		if id != inj.loggerID {
			inj.enrich(inst)
		}
		return inst, nil
	}

	// Register only admits Constructor or Factory.
	return nil, InstanceCreationError{
		Identity: id,
		Cause:    InvalidStrategyError{Identity: id, GotType: typeName(reg.strategy)},
	}
}

// resolveParams expands declared parameters into resolved arguments:
// literals pass through, references recurse into getInstance. This is the
// only place construction re-enters the resolver, which is what turns the
// registry into a graph builder.
func (inj *Injector) resolveParams(params Params) (Args, error) {
	args := make(Args, len(params))
	for name, p := range params {
		if !p.isRef {
			args[name] = p.value
			continue
		}
		if _, ok := inj.registrations[p.ref]; !ok {
			return nil, UnknownDependencyError{Param: name, Identity: p.ref}
		}
		inst, err := inj.getInstance(p.ref)
		if err != nil {
			return nil, err
		}
		args[name] = inst
	}
	return args, nil
}

// enrich attaches the logger capability to a LoggerAware instance.
// Every failure path is swallowed: enrichment is best-effort by contract.
func (inj *Injector) enrich(instance any) {
	aware, ok := instance.(LoggerAware)
	if !ok {
		return
	}
	inst, err := inj.getInstance(inj.loggerID)
	if err != nil {
		return
	}
	logger, ok := inst.(Logger)
	if !ok {
		return
	}
	aware.SetLogger(logger)
}

// Registered reports whether id has a binding.
func (inj *Injector) Registered(id Identity) bool {
	inj.mu.Lock()
	defer inj.mu.Unlock()
	_, ok := inj.registrations[id]
	return ok
}

// Keys returns all registered identities in sorted order.
func (inj *Injector) Keys() []Identity {
	inj.mu.Lock()
	defer inj.mu.Unlock()
	keys := make([]Identity, 0, len(inj.registrations))
	for id := range inj.registrations {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}

// Size returns the number of registered identities.
func (inj *Injector) Size() int {
	inj.mu.Lock()
	defer inj.mu.Unlock()
	return len(inj.registrations)
}
