package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLifetime_String verifies the human-readable names for all lifetimes.
func TestLifetime_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		lifetime Lifetime
		want     string
	}{
		{name: "transient", lifetime: Transient, want: "Transient"},
		{name: "scoped", lifetime: Scoped, want: "Scoped"},
		{name: "singleton", lifetime: Singleton, want: "Singleton"},
		{name: "out of range", lifetime: Lifetime(42), want: "Unknown"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.lifetime.String())
		})
	}
}

// TestLifetime_ZeroValueIsTransient pins the default lifetime for
// registrations that do not pick one.
func TestLifetime_ZeroValueIsTransient(t *testing.T) {
	t.Parallel()

	var l Lifetime
	assert.Equal(t, Transient, l)
}
