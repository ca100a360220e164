package di

import (
	"reflect"
	"strconv"
)

// InvalidStrategyError is returned by Register when the strategy is neither
// a Constructor nor a Factory (or is a typed nil of either).
type InvalidStrategyError struct {
	// Identity is the registration key the strategy was offered for.
	Identity Identity

	// GotType is reflect.TypeOf(strategy).String(), or "<nil>" for untyped nil.
	GotType string
}

// Error implements the error interface.
func (e InvalidStrategyError) Error() string {
	// Example: di: invalid strategy for "IDatabase" (int)
	return "di: invalid strategy for " + strconv.Quote(string(e.Identity)) + " (" + e.GotType + ")"
}

// UnregisteredServiceError is returned by GetInstance when the identity has
// no registration. It is never wrapped in InstanceCreationError at the top
// level: lookup failures surface directly.
type UnregisteredServiceError struct{ Identity Identity }

// Error implements the error interface.
func (e UnregisteredServiceError) Error() string {
	// Example: di: no registration found for "IDatabase"
	return "di: no registration found for " + strconv.Quote(string(e.Identity))
}

// OutOfScopeError is returned when a Scoped lookup happens while no scope is
// active. Scoped never falls back to Transient.
type OutOfScopeError struct{ Identity Identity }

// Error implements the error interface.
func (e OutOfScopeError) Error() string {
	// Example: di: scoped lookup of "IDatabase" outside an active scope
	return "di: scoped lookup of " + strconv.Quote(string(e.Identity)) + " outside an active scope"
}

// UnknownDependencyError is returned when a Ref parameter names an identity
// with no registration. Callers observe it wrapped in InstanceCreationError.
type UnknownDependencyError struct {
	// Param is the parameter name carrying the reference.
	Param string

	// Identity is the referenced (unregistered) service identity.
	Identity Identity
}

// Error implements the error interface.
func (e UnknownDependencyError) Error() string {
	// Example: di: parameter "logger" references unknown service "ILogger"
	return "di: parameter " + strconv.Quote(e.Param) +
		" references unknown service " + strconv.Quote(string(e.Identity))
}

// InstanceCreationError wraps any failure during construction — parameter
// resolution, constructor/factory failure, or a failed dependency build —
// so callers see one failure kind per identity regardless of depth.
//
// The underlying cause is preserved and reachable via errors.As / errors.Is.
type InstanceCreationError struct {
	Identity Identity
	Cause    error
}

// Error implements the error interface.
func (e InstanceCreationError) Error() string {
	// Example: di: failed to create instance of "IDatabase": ...
	msg := "di: failed to create instance of " + strconv.Quote(string(e.Identity))
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e InstanceCreationError) Unwrap() error { return e.Cause }

// MissingArgError is returned by TryArgAs when the argument is not present.
type MissingArgError struct{ Name string }

// Error implements the error interface.
func (e MissingArgError) Error() string {
	// Example: di: argument "connection_string" missing
	return "di: argument " + strconv.Quote(e.Name) + " missing"
}

// WrongTypeArgError is returned by TryArgAs when the argument exists but is
// not assignable to the requested type.
type WrongTypeArgError struct {
	// Name is the argument name requested.
	Name string

	// GotType is reflect.TypeOf(raw).String() for the stored value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeArgError) Error() string {
	// Example: di: argument "smtp_port" has wrong type (string)
	return "di: argument " + strconv.Quote(e.Name) + " has wrong type (" + e.GotType + ")"
}

// typeName names a value's dynamic type for error context.
func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
