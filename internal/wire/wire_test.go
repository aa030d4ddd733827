package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWire_Constructors(t *testing.T) {
	w, err := FromValue("x", 123)
	require.NoError(t, err)
	assert.Equal(t, ID("x"), w.ID())
	assert.Equal(t, Constant(123), w.Input())

	w, err = FromWire("y", "x")
	require.NoError(t, err)
	assert.Equal(t, Alias("x"), w.Input())

	w, err = FromGateAnd("d", "x", "y")
	require.NoError(t, err)
	g, ok := w.Input().(Gate)
	require.True(t, ok)
	assert.Equal(t, GateAnd, g.Op())
	assert.Equal(t, []ID{"x", "y"}, g.Refs())
}

func TestWire_SelfReferenceRejected(t *testing.T) {
	cases := []struct {
		name  string
		build func() (Wire, error)
	}{
		{"alias", func() (Wire, error) { return FromWire("a", "a") }},
		{"and left", func() (Wire, error) { return FromGateAnd("a", "a", "b") }},
		{"and right", func() (Wire, error) { return FromGateAnd("a", "b", "a") }},
		{"or", func() (Wire, error) { return FromGateOr("a", "a", "a") }},
		{"and value", func() (Wire, error) { return FromGateAndValue("a", "a", 7) }},
		{"or value", func() (Wire, error) { return FromGateOrValue("a", "a", 7) }},
		{"lshift", func() (Wire, error) { return FromGateLShift("a", "a", 2) }},
		{"rshift", func() (Wire, error) { return FromGateRShift("a", "a", 2) }},
		{"not", func() (Wire, error) { return FromGateNot("a", "a") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			require.Error(t, err)
			assert.True(t, IsSelfReference(err), "expected SELF_REFERENCE, got %v", err)
		})
	}
}

func TestWire_ConstantMayEqualAnything(t *testing.T) {
	// A constant input has no refs, so no self-reference is possible.
	_, err := FromValue("a", 0xffff)
	assert.NoError(t, err)
}

func TestWire_InvalidIDsRejected(t *testing.T) {
	_, err := FromValue("A", 1)
	assert.True(t, IsInvalidID(err))
	_, err = FromWire("a", "2b")
	assert.True(t, IsInvalidID(err))
	_, err = FromGateNot("", "a")
	assert.True(t, IsInvalidID(err))
}

func TestSignal_States(t *testing.T) {
	assert.Equal(t, Unresolved(), Signal{})
	assert.Equal(t, "unresolved", Unresolved().String())
	assert.Equal(t, "unresolvable", Unresolvable().String())
	assert.Equal(t, "72", Value(72).String())
	assert.True(t, Value(0).IsValue())
	assert.False(t, Unresolvable().IsValue())
}
