package wire

// GateOp identifies one of the fixed gate kinds.
type GateOp int

const (
	// GateAnd combines two wires with bitwise AND.
	GateAnd GateOp = iota + 1
	// GateAndValue combines one wire with an embedded constant, bitwise AND.
	GateAndValue
	// GateOr combines two wires with bitwise OR.
	GateOr
	// GateOrValue combines one wire with an embedded constant, bitwise OR.
	GateOrValue
	// GateLShift shifts a wire's signal left by a fixed amount in 0..15.
	GateLShift
	// GateRShift shifts a wire's signal right by a fixed amount in 0..15.
	// The shift is logical - high bits fill with zero.
	GateRShift
	// GateNot is the bitwise complement of one wire.
	GateNot
)

// String returns the DSL keyword for the operation.
func (op GateOp) String() string {
	switch op {
	case GateAnd, GateAndValue:
		return "AND"
	case GateOr, GateOrValue:
		return "OR"
	case GateLShift:
		return "LSHIFT"
	case GateRShift:
		return "RSHIFT"
	case GateNot:
		return "NOT"
	default:
		return "?"
	}
}

// Gate is a fixed-arity bitwise or shift operation over 1-2 wire references,
// optionally with an embedded constant. Gates are built through the
// constructors below, which validate operand ids and shift ranges.
type Gate struct {
	op    GateOp
	left  ID
	right ID     // second operand, GateAnd and GateOr only
	value uint16 // embedded constant, GateAndValue and GateOrValue only
	shift uint8  // GateLShift and GateRShift only
}

func (Gate) isInput() {}

// AndGate returns a two-wire AND gate.
func AndGate(left, right string) (Gate, error) {
	return twoWireGate(GateAnd, left, right)
}

// OrGate returns a two-wire OR gate.
func OrGate(left, right string) (Gate, error) {
	return twoWireGate(GateOr, left, right)
}

func twoWireGate(op GateOp, left, right string) (Gate, error) {
	l, err := NewID(left)
	if err != nil {
		return Gate{}, err
	}
	r, err := NewID(right)
	if err != nil {
		return Gate{}, err
	}
	return Gate{op: op, left: l, right: r}, nil
}

// AndValueGate returns an AND gate of one wire and an embedded constant.
func AndValueGate(input string, value uint16) (Gate, error) {
	return valueGate(GateAndValue, input, value)
}

// OrValueGate returns an OR gate of one wire and an embedded constant.
func OrValueGate(input string, value uint16) (Gate, error) {
	return valueGate(GateOrValue, input, value)
}

func valueGate(op GateOp, input string, value uint16) (Gate, error) {
	in, err := NewID(input)
	if err != nil {
		return Gate{}, err
	}
	return Gate{op: op, left: in, value: value}, nil
}

// LShiftGate returns a logical left-shift gate. The shift must be in 0..15.
func LShiftGate(input string, shift uint8) (Gate, error) {
	return shiftGate(GateLShift, input, shift)
}

// RShiftGate returns a logical right-shift gate. The shift must be in 0..15.
func RShiftGate(input string, shift uint8) (Gate, error) {
	return shiftGate(GateRShift, input, shift)
}

func shiftGate(op GateOp, input string, shift uint8) (Gate, error) {
	in, err := NewID(input)
	if err != nil {
		return Gate{}, err
	}
	if shift > 15 {
		return Gate{}, newShiftTooLargeError(shift)
	}
	return Gate{op: op, left: in, shift: shift}, nil
}

// NotGate returns a bitwise-complement gate.
func NotGate(input string) (Gate, error) {
	in, err := NewID(input)
	if err != nil {
		return Gate{}, err
	}
	return Gate{op: GateNot, left: in}, nil
}

// Op returns the gate's operation.
func (g Gate) Op() GateOp { return g.op }

// Left returns the first operand wire id.
func (g Gate) Left() ID { return g.left }

// Right returns the second operand wire id. Only meaningful for GateAnd
// and GateOr.
func (g Gate) Right() ID { return g.right }

// Const returns the embedded constant. Only meaningful for GateAndValue
// and GateOrValue.
func (g Gate) Const() uint16 { return g.value }

// Shift returns the shift amount. Only meaningful for GateLShift and
// GateRShift.
func (g Gate) Shift() uint8 { return g.shift }

// Refs implements Input.
func (g Gate) Refs() []ID {
	switch g.op {
	case GateAnd, GateOr:
		return []ID{g.left, g.right}
	default:
		return []ID{g.left}
	}
}

// Evaluate implements Input. Operands correspond one-to-one with Refs.
// All arithmetic is on 16-bit unsigned values; shifts are logical and NOT
// wraps mod 2^16.
func (g Gate) Evaluate(operands []uint16) uint16 {
	switch g.op {
	case GateAnd:
		return operands[0] & operands[1]
	case GateOr:
		return operands[0] | operands[1]
	case GateAndValue:
		return operands[0] & g.value
	case GateOrValue:
		return operands[0] | g.value
	case GateLShift:
		return operands[0] << g.shift
	case GateRShift:
		return operands[0] >> g.shift
	case GateNot:
		return ^operands[0]
	default:
		return 0
	}
}
