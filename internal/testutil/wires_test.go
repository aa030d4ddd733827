package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanocorp/wiring/internal/wire"
)

func TestParseWires(t *testing.T) {
	wires := ParseWires(t, "123 -> x", "NOT x -> h")
	require.Len(t, wires, 2)
	assert.Equal(t, wire.ID("x"), wires[0].ID())
	assert.Equal(t, wire.ID("h"), wires[1].ID())
}

func TestBuildCircuit(t *testing.T) {
	c := BuildCircuit(t, "123 -> x", "NOT x -> h")
	assert.Equal(t, 2, c.Len())

	require.NoError(t, c.Resolve())
	sig, err := c.Signal("h")
	require.NoError(t, err)
	assert.Equal(t, wire.Value(65412), sig)
}
