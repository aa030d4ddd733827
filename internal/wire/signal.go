package wire

import "strconv"

// SignalKind distinguishes the three resolution states of a wire.
type SignalKind int

const (
	// SignalUnresolved marks a wire not yet computed in the current
	// evaluation epoch. It is the zero value, so a fresh Signal starts here.
	SignalUnresolved SignalKind = iota

	// SignalUnresolvable marks a wire whose computation reached a reference
	// to a wire absent from the store, or that transitively depends on one.
	SignalUnresolvable

	// SignalValue marks a wire holding a resolved 16-bit signal.
	SignalValue
)

// String returns the kind name used in traces and CLI output.
func (k SignalKind) String() string {
	switch k {
	case SignalUnresolved:
		return "unresolved"
	case SignalUnresolvable:
		return "unresolvable"
	case SignalValue:
		return "value"
	default:
		return "unknown"
	}
}

// Signal is the three-state resolution outcome of a wire.
//
// The zero value is the unresolved state. Signals are comparable with ==.
type Signal struct {
	Kind SignalKind

	// Value holds the resolved signal. Only meaningful when Kind is
	// SignalValue; zero otherwise.
	Value uint16
}

// Unresolved returns the not-yet-computed signal state.
func Unresolved() Signal {
	return Signal{}
}

// Unresolvable returns the permanently-unresolvable signal state.
func Unresolvable() Signal {
	return Signal{Kind: SignalUnresolvable}
}

// Value returns a resolved signal carrying v.
func Value(v uint16) Signal {
	return Signal{Kind: SignalValue, Value: v}
}

// IsValue reports whether the signal holds a resolved value.
func (s Signal) IsValue() bool {
	return s.Kind == SignalValue
}

// String renders the signal for traces and CLI output: the decimal value
// when resolved, the state name otherwise.
func (s Signal) String() string {
	if s.Kind == SignalValue {
		return strconv.FormatUint(uint64(s.Value), 10)
	}
	return s.Kind.String()
}
