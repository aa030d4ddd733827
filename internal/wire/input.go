package wire

// Input is the defining expression of a wire: a constant, a passthrough of
// another wire, or a gate combining other wires.
//
// Input is a sealed interface - only Constant, Alias, and Gate implement it.
// The resolution engine drives evaluation through Refs and Evaluate without
// ever switching on the concrete type.
type Input interface {
	// Refs returns the wire ids this input reads, in evaluation order.
	// Empty for constants.
	Refs() []ID

	// Evaluate computes the 16-bit signal from the operand values, which
	// must correspond one-to-one with Refs.
	Evaluate(operands []uint16) uint16

	isInput() // Sealed - only these types implement it
}

// Constant is a fixed 16-bit input value.
type Constant uint16

func (Constant) isInput() {}

// Refs implements Input. A constant reads no wires.
func (Constant) Refs() []ID { return nil }

// Evaluate implements Input.
func (c Constant) Evaluate([]uint16) uint16 { return uint16(c) }

// Alias passes another wire's signal through unchanged.
type Alias ID

func (Alias) isInput() {}

// Refs implements Input.
func (a Alias) Refs() []ID { return []ID{ID(a)} }

// Evaluate implements Input.
func (Alias) Evaluate(operands []uint16) uint16 { return operands[0] }
