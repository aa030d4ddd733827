package dsl

import (
	"fmt"

	"github.com/nanocorp/wiring/internal/wire"
)

// Format renders a wire back into its canonical definition line. Embedded
// constants in AND/OR gates always appear on the right, so parsing a
// formatted line yields the original wire.
func Format(w wire.Wire) string {
	return fmt.Sprintf("%s -> %s", formatInput(w.Input()), w.ID())
}

func formatInput(in wire.Input) string {
	switch v := in.(type) {
	case wire.Constant:
		return fmt.Sprintf("%d", uint16(v))
	case wire.Alias:
		return string(v)
	case wire.Gate:
		return formatGate(v)
	default:
		return "?"
	}
}

func formatGate(g wire.Gate) string {
	switch g.Op() {
	case wire.GateAnd, wire.GateOr:
		return fmt.Sprintf("%s %s %s", g.Left(), g.Op(), g.Right())
	case wire.GateAndValue, wire.GateOrValue:
		return fmt.Sprintf("%s %s %d", g.Left(), g.Op(), g.Const())
	case wire.GateLShift, wire.GateRShift:
		return fmt.Sprintf("%s %s %d", g.Left(), g.Op(), g.Shift())
	case wire.GateNot:
		return fmt.Sprintf("NOT %s", g.Left())
	default:
		return "?"
	}
}

// FormatAll renders wires into definition lines, one per wire, preserving
// order.
func FormatAll(wires []wire.Wire) []string {
	lines := make([]string, len(wires))
	for i, w := range wires {
		lines[i] = Format(w)
	}
	return lines
}
