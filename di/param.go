package di

// Param is a single named construction parameter: either a literal value or
// a reference to another registered service, resolved at build time.
//
// Using a tagged value instead of a sigil-prefixed string keeps references
// out of the literal value space: a literal string can never be mistaken for
// a service reference.
type Param struct {
	value any
	ref   Identity
	isRef bool
}

// Literal wraps a plain value that is passed through to the strategy as-is.
func Literal(v any) Param { return Param{value: v} }

// Ref declares a dependency edge: at build time the referenced identity is
// resolved via GetInstance and the resulting instance is substituted.
func Ref(id Identity) Param { return Param{ref: id, isRef: true} }

// IsRef reports whether the parameter is a service reference.
func (p Param) IsRef() bool { return p.isRef }

// Target returns the referenced identity. ok is false for literals.
func (p Param) Target() (Identity, bool) {
	if !p.isRef {
		return "", false
	}
	return p.ref, true
}

// Value returns the literal value. ok is false for references.
func (p Param) Value() (any, bool) {
	if p.isRef {
		return nil, false
	}
	return p.value, true
}

// Params maps parameter names to their declared values or references.
//
// The map is copied when stored in a registration, so mutating it after
// Register has no effect; re-register to change a binding.
type Params map[string]Param

// clone returns an independent copy so stored registrations stay immutable.
func (p Params) clone() Params {
	cp := make(Params, len(p))
	for name, param := range p {
		cp[name] = param
	}
	return cp
}

// Args is the resolved parameter map handed to a Constructor or Factory:
// literals unchanged, references replaced by resolved instances.
//
// Typed retrieval is available via ArgAs / TryArgAs.
type Args map[string]any

// ArgAs returns the argument typed as T.
//
// ok is false if the name is missing or the stored value is not a T.
func ArgAs[T any](args Args, name string) (T, bool) {
	var zero T
	if args == nil {
		return zero, false
	}
	raw, ok := args[name]
	if !ok || raw == nil {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// TryArgAs returns the argument typed as T.
//
// It returns:
//   - MissingArgError if the name is not present
//   - WrongTypeArgError if the name exists but the value is not a T
//
// It avoids fmt.Errorf so failure paths stay cheap inside constructors.
func TryArgAs[T any](args Args, name string) (T, error) {
	var zero T
	if args == nil {
		return zero, MissingArgError{Name: name}
	}
	raw, ok := args[name]
	if !ok || raw == nil {
		return zero, MissingArgError{Name: name}
	}
	v, ok := raw.(T)
	if !ok {
		return zero, WrongTypeArgError{Name: name, GotType: typeName(raw)}
	}
	return v, nil
}
