// Package wire defines the wire model shared by the circuit store and the
// layers around it: validated identifiers, the three-state Signal, and the
// Input union (constant, alias, or gate) that defines each wire.
//
// A Wire is immutable once constructed. All validation happens in the
// constructors: identifier format, shift ranges, and self-reference are
// rejected before a wire can ever reach a store.
package wire
