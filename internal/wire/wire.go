package wire

// Wire is a named node in the dependency graph: one identifier and one
// immutable defining input. The resolved signal is bookkeeping owned by the
// circuit store, not part of the wire itself, so a Wire can never be
// observed with a stale value.
type Wire struct {
	id    ID
	input Input
}

// New builds a wire from an already-validated id and input, rejecting
// self-reference: the output id must not appear among the input's operands.
func New(id ID, input Input) (Wire, error) {
	for _, ref := range input.Refs() {
		if ref == id {
			return Wire{}, newSelfReferenceError(id.String())
		}
	}
	return Wire{id: id, input: input}, nil
}

// FromValue builds a wire defined by a constant.
func FromValue(id string, value uint16) (Wire, error) {
	wid, err := NewID(id)
	if err != nil {
		return Wire{}, err
	}
	return New(wid, Constant(value))
}

// FromWire builds a wire aliasing another wire's signal.
func FromWire(id, source string) (Wire, error) {
	wid, err := NewID(id)
	if err != nil {
		return Wire{}, err
	}
	src, err := NewID(source)
	if err != nil {
		return Wire{}, err
	}
	return New(wid, Alias(src))
}

// FromGate builds a wire defined by an already-constructed gate.
func FromGate(id string, gate Gate) (Wire, error) {
	wid, err := NewID(id)
	if err != nil {
		return Wire{}, err
	}
	return New(wid, gate)
}

// FromGateAnd builds id = left AND right.
func FromGateAnd(id, left, right string) (Wire, error) {
	g, err := AndGate(left, right)
	if err != nil {
		return Wire{}, err
	}
	return FromGate(id, g)
}

// FromGateAndValue builds id = input AND value.
func FromGateAndValue(id, input string, value uint16) (Wire, error) {
	g, err := AndValueGate(input, value)
	if err != nil {
		return Wire{}, err
	}
	return FromGate(id, g)
}

// FromGateOr builds id = left OR right.
func FromGateOr(id, left, right string) (Wire, error) {
	g, err := OrGate(left, right)
	if err != nil {
		return Wire{}, err
	}
	return FromGate(id, g)
}

// FromGateOrValue builds id = input OR value.
func FromGateOrValue(id, input string, value uint16) (Wire, error) {
	g, err := OrValueGate(input, value)
	if err != nil {
		return Wire{}, err
	}
	return FromGate(id, g)
}

// FromGateLShift builds id = input LSHIFT shift.
func FromGateLShift(id, input string, shift uint8) (Wire, error) {
	g, err := LShiftGate(input, shift)
	if err != nil {
		return Wire{}, err
	}
	return FromGate(id, g)
}

// FromGateRShift builds id = input RSHIFT shift.
func FromGateRShift(id, input string, shift uint8) (Wire, error) {
	g, err := RShiftGate(input, shift)
	if err != nil {
		return Wire{}, err
	}
	return FromGate(id, g)
}

// FromGateNot builds id = NOT input.
func FromGateNot(id, input string) (Wire, error) {
	g, err := NotGate(input)
	if err != nil {
		return Wire{}, err
	}
	return FromGate(id, g)
}

// ID returns the wire's identifier.
func (w Wire) ID() ID { return w.id }

// Input returns the wire's defining input.
func (w Wire) Input() Input { return w.input }
