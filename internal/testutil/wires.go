// Package testutil provides shared circuit-building helpers for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nanocorp/wiring/internal/circuit"
	"github.com/nanocorp/wiring/internal/dsl"
	"github.com/nanocorp/wiring/internal/wire"
)

// ParseWires parses definition lines into wires, failing the test on
// any malformed line.
func ParseWires(t *testing.T, lines ...string) []wire.Wire {
	t.Helper()
	wires, err := dsl.ParseLines(lines)
	require.NoError(t, err)
	return wires
}

// BuildCircuit parses definition lines and inserts them into a fresh
// circuit, failing the test on parse or insertion errors. Signals are
// left unresolved.
func BuildCircuit(t *testing.T, lines ...string) *circuit.Circuit {
	t.Helper()
	c := circuit.New()
	for _, w := range ParseWires(t, lines...) {
		require.NoError(t, c.Insert(w))
	}
	return c
}
