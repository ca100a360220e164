package di

// Lifetime declares how long a constructed instance lives and who owns it.
//
// The zero value is Transient, so registrations that do not pick a lifetime
// get a fresh instance on every lookup.
type Lifetime int

const (
	// Transient builds a new instance on every lookup; the injector keeps
	// no reference after returning it.
	Transient Lifetime = iota

	// Scoped builds one instance per active scope window; the instance is
	// discarded when the scope exits. Lookups outside a scope fail.
	Scoped

	// Singleton builds one instance for the injector's entire lifetime.
	Singleton
)

// String implements fmt.Stringer.
func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "Transient"
	case Scoped:
		return "Scoped"
	case Singleton:
		return "Singleton"
	default:
		return "Unknown"
	}
}
