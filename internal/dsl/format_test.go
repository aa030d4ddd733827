package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_RoundTrip(t *testing.T) {
	lines := []string{
		"123 -> x",
		"lx -> a",
		"NOT x -> h",
		"x AND y -> d",
		"x OR y -> e",
		"x AND 1 -> d",
		"x OR 255 -> e",
		"x LSHIFT 2 -> f",
		"y RSHIFT 15 -> g",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			w, err := ParseWire(line)
			require.NoError(t, err)
			assert.Equal(t, line, Format(w))
		})
	}
}

func TestFormat_NormalizesConstantSide(t *testing.T) {
	// Parsing accepts the constant on either side of AND/OR; formatting
	// always emits it on the right.
	w, err := ParseWire("1 AND x -> d")
	require.NoError(t, err)
	assert.Equal(t, "x AND 1 -> d", Format(w))

	w, err = ParseWire("255 OR x -> e")
	require.NoError(t, err)
	assert.Equal(t, "x OR 255 -> e", Format(w))
}

func TestFormatAll(t *testing.T) {
	wires, err := ParseLines([]string{"1 -> a", "NOT a -> b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1 -> a", "NOT a -> b"}, FormatAll(wires))
}
