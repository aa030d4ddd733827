// Package compiler turns structured CUE circuit definitions into validated
// wires. It uses the CUE SDK's Go API directly (not a CLI subprocess).
//
// The expected shape is a struct with one field per wire, keyed by wire id:
//
//	circuit: {
//	    wires: {
//	        x: {value: 123}
//	        a: {from: "x"}
//	        d: {and: ["x", "y"]}
//	        e: {or: {wire: "x", value: 1}}
//	        f: {lshift: {wire: "x", by: 2}}
//	        g: {rshift: {wire: "y", by: 2}}
//	        h: {not: "x"}
//	    }
//	}
//
// CompileCircuit receives the value of the circuit struct itself; locating
// it inside a file or instance is the loader's job.
package compiler

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/nanocorp/wiring/internal/wire"
)

// wireFields are the recognized wire definition forms. Exactly one must be
// present per wire.
var wireFields = []string{"value", "from", "and", "or", "lshift", "rshift", "not"}

// CompileCircuit parses a CUE circuit struct into wires, in field order.
func CompileCircuit(v cue.Value) ([]wire.Wire, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	wiresVal := v.LookupPath(cue.ParsePath("wires"))
	if !wiresVal.Exists() {
		return nil, &CompileError{
			Field:   "wires",
			Message: "wires is required",
			Pos:     v.Pos(),
		}
	}

	iter, err := wiresVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var wires []wire.Wire
	for iter.Next() {
		w, err := compileWire(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		wires = append(wires, w)
	}
	if len(wires) == 0 {
		return nil, &CompileError{
			Field:   "wires",
			Message: "at least one wire is required",
			Pos:     wiresVal.Pos(),
		}
	}
	return wires, nil
}

// compileWire dispatches on the single definition form present.
func compileWire(id string, v cue.Value) (wire.Wire, error) {
	field := ""
	for _, name := range wireFields {
		if !v.LookupPath(cue.ParsePath(name)).Exists() {
			continue
		}
		if field != "" {
			return wire.Wire{}, compileErr(id, v,
				fmt.Sprintf("wire defines both %q and %q; exactly one form is allowed", field, name))
		}
		field = name
	}
	if field == "" {
		return wire.Wire{}, compileErr(id, v,
			"wire must define one of: value, from, and, or, lshift, rshift, not")
	}

	fv := v.LookupPath(cue.ParsePath(field))
	w, err := compileForm(id, field, fv)
	if err != nil {
		if _, ok := err.(*CompileError); ok {
			return wire.Wire{}, err
		}
		// Construction errors (bad id, self-reference, shift range) carry
		// no CUE position of their own.
		return wire.Wire{}, compileErr(id, fv, err.Error())
	}
	return w, nil
}

func compileForm(id, field string, v cue.Value) (wire.Wire, error) {
	switch field {
	case "value":
		value, err := compileU16(id, field, v)
		if err != nil {
			return wire.Wire{}, err
		}
		return wire.FromValue(id, value)

	case "from":
		source, err := v.String()
		if err != nil {
			return wire.Wire{}, formatCUEError(err)
		}
		return wire.FromWire(id, source)

	case "not":
		input, err := v.String()
		if err != nil {
			return wire.Wire{}, formatCUEError(err)
		}
		return wire.FromGateNot(id, input)

	case "and":
		return compileBinary(id, field, v,
			func(a, b string) (wire.Wire, error) { return wire.FromGateAnd(id, a, b) },
			func(a string, value uint16) (wire.Wire, error) { return wire.FromGateAndValue(id, a, value) })

	case "or":
		return compileBinary(id, field, v,
			func(a, b string) (wire.Wire, error) { return wire.FromGateOr(id, a, b) },
			func(a string, value uint16) (wire.Wire, error) { return wire.FromGateOrValue(id, a, value) })

	case "lshift":
		return compileShift(id, field, v,
			func(a string, by uint8) (wire.Wire, error) { return wire.FromGateLShift(id, a, by) })

	case "rshift":
		return compileShift(id, field, v,
			func(a string, by uint8) (wire.Wire, error) { return wire.FromGateRShift(id, a, by) })

	default:
		return wire.Wire{}, compileErr(id, v, fmt.Sprintf("unknown form %q", field))
	}
}

// compileBinary handles the two shapes of and/or: a two-element list of
// wire ids, or a {wire, value} struct for the embedded-constant form.
func compileBinary(id, field string, v cue.Value,
	wireWire func(a, b string) (wire.Wire, error),
	wireValue func(a string, value uint16) (wire.Wire, error),
) (wire.Wire, error) {
	if list, err := v.List(); err == nil {
		var operands []string
		for list.Next() {
			s, err := list.Value().String()
			if err != nil {
				return wire.Wire{}, formatCUEError(err)
			}
			operands = append(operands, s)
		}
		if len(operands) != 2 {
			return wire.Wire{}, compileErr(id, v,
				fmt.Sprintf("%s list must name exactly two wires, got %d", field, len(operands)))
		}
		return wireWire(operands[0], operands[1])
	}

	operand, err := v.LookupPath(cue.ParsePath("wire")).String()
	if err != nil {
		return wire.Wire{}, compileErr(id, v,
			fmt.Sprintf("%s must be a two-wire list or a {wire, value} struct", field))
	}
	value, err := compileU16(id, field+".value", v.LookupPath(cue.ParsePath("value")))
	if err != nil {
		return wire.Wire{}, err
	}
	return wireValue(operand, value)
}

func compileShift(id, field string, v cue.Value,
	build func(a string, by uint8) (wire.Wire, error),
) (wire.Wire, error) {
	operand, err := v.LookupPath(cue.ParsePath("wire")).String()
	if err != nil {
		return wire.Wire{}, compileErr(id, v, fmt.Sprintf("%s must be a {wire, by} struct", field))
	}
	byVal := v.LookupPath(cue.ParsePath("by"))
	by, err := byVal.Int64()
	if err != nil {
		return wire.Wire{}, compileErr(id, v, fmt.Sprintf("%s.by must be an integer", field))
	}
	if by < 0 || by > 15 {
		return wire.Wire{}, compileErr(id, byVal, fmt.Sprintf("%s.by must be in 0..15, got %d", field, by))
	}
	return build(operand, uint8(by))
}

func compileU16(id, field string, v cue.Value) (uint16, error) {
	n, err := v.Int64()
	if err != nil {
		return 0, compileErr(id, v, fmt.Sprintf("%s must be an integer", field))
	}
	if n < 0 || n > 0xffff {
		return 0, compileErr(id, v, fmt.Sprintf("%s must fit in 16 bits, got %d", field, n))
	}
	return uint16(n), nil
}

func compileErr(id string, v cue.Value, msg string) *CompileError {
	return &CompileError{
		Field:   "wires." + id,
		Message: msg,
		Pos:     v.Pos(),
	}
}

// CompileError represents a circuit compilation error with CUE position info.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	positions := errors.Positions(first)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}
	return &CompileError{Field: "cue", Message: first.Error()}
}
