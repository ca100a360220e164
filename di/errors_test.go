package di

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Error() strings
// -----------------------------------------------------------------------------

// TestErrors_Strings pins every error message in one place.
func TestErrors_Strings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "InvalidStrategyError",
			err:  InvalidStrategyError{Identity: "IDatabase", GotType: "int"},
			want: `di: invalid strategy for "IDatabase" (int)`,
		},
		{
			name: "UnregisteredServiceError",
			err:  UnregisteredServiceError{Identity: "IDatabase"},
			want: `di: no registration found for "IDatabase"`,
		},
		{
			name: "OutOfScopeError",
			err:  OutOfScopeError{Identity: "IDatabase"},
			want: `di: scoped lookup of "IDatabase" outside an active scope`,
		},
		{
			name: "UnknownDependencyError",
			err:  UnknownDependencyError{Param: "logger", Identity: "ILogger"},
			want: `di: parameter "logger" references unknown service "ILogger"`,
		},
		{
			name: "InstanceCreationError with cause",
			err:  InstanceCreationError{Identity: "IDatabase", Cause: errors.New("boom")},
			want: `di: failed to create instance of "IDatabase": boom`,
		},
		{
			name: "InstanceCreationError without cause",
			err:  InstanceCreationError{Identity: "IDatabase"},
			want: `di: failed to create instance of "IDatabase"`,
		},
		{
			name: "MissingArgError",
			err:  MissingArgError{Name: "connection_string"},
			want: `di: argument "connection_string" missing`,
		},
		{
			name: "WrongTypeArgError",
			err:  WrongTypeArgError{Name: "smtp_port", GotType: "string"},
			want: `di: argument "smtp_port" has wrong type (string)`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

//
// -----------------------------------------------------------------------------
// Wrapping
// -----------------------------------------------------------------------------

// TestInstanceCreationError_Unwrap verifies the cause stays reachable via
// errors.Is and errors.As through the wrapper.
func TestInstanceCreationError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("ctor exploded")
	wrapped := InstanceCreationError{Identity: "IDatabase", Cause: sentinel}

	require.True(t, errors.Is(wrapped, sentinel))

	nested := InstanceCreationError{
		Identity: "IEmailService",
		Cause: InstanceCreationError{
			Identity: "IDatabase",
			Cause:    UnknownDependencyError{Param: "logger", Identity: "ILogger"},
		},
	}

	var unknown UnknownDependencyError
	require.True(t, errors.As(nested, &unknown))
	assert.Equal(t, "logger", unknown.Param)
	assert.Equal(t, Identity("ILogger"), unknown.Identity)

	var creation InstanceCreationError
	require.True(t, errors.As(nested, &creation))
	assert.Equal(t, Identity("IEmailService"), creation.Identity)
}

// TestTypeName covers the nil and non-nil branches of the type namer.
func TestTypeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<nil>", typeName(nil))
	assert.Equal(t, "int", typeName(42))
	assert.Equal(t, "di.Constructor", typeName(Constructor(nil)))
}
