// Package dsl implements the textual wire grammar consumed and produced by
// the tooling around the circuit engine:
//
//	<input> -> <id>
//
// where <input> is a decimal 16-bit value, a wire id, "NOT <id>",
// "<id> AND|OR <id-or-value>", or "<id> LSHIFT|RSHIFT <0..15>". When
// parsing, AND and OR accept the embedded constant on either side;
// formatting always emits it on the right. The engine itself never touches
// text: this package turns lines into validated wire values and back.
package dsl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nanocorp/wiring/internal/wire"
)

// ParseError reports a line that could not be parsed into a wire.
type ParseError struct {
	// Code identifies the error category.
	Code ParseErrorCode

	// Message is a human-readable description.
	Message string

	// Line is the 1-based line number, 0 when parsing a single definition.
	Line int

	// Text is the offending definition text.
	Text string

	// Err is the underlying construction error, if any.
	Err error
}

// ParseErrorCode categorizes parse errors.
type ParseErrorCode string

const (
	// ErrCodeMissingArrow indicates a definition without " -> ".
	ErrCodeMissingArrow ParseErrorCode = "MISSING_ARROW"

	// ErrCodeBadGate indicates an unrecognized gate expression.
	ErrCodeBadGate ParseErrorCode = "BAD_GATE"

	// ErrCodeValueTooLarge indicates a constant that does not fit in 16 bits.
	ErrCodeValueTooLarge ParseErrorCode = "VALUE_TOO_LARGE"

	// ErrCodeBadShift indicates a shift operand that is not a number in 0..15.
	ErrCodeBadShift ParseErrorCode = "BAD_SHIFT"

	// ErrCodeBadDefinition indicates a definition rejected by wire
	// construction (invalid id, self-reference).
	ErrCodeBadDefinition ParseErrorCode = "BAD_DEFINITION"
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s (%q)", e.Line, e.Code, e.Message, e.Text)
	}
	return fmt.Sprintf("%s: %s (%q)", e.Code, e.Message, e.Text)
}

// Unwrap returns the underlying construction error, if any.
func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError reports whether err is a ParseError with the given code.
func IsParseError(err error, code ParseErrorCode) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Code == code
}

// ParseWire parses a single definition line into a wire.
func ParseWire(line string) (wire.Wire, error) {
	return parseWire(line, 0)
}

func parseWire(line string, lineno int) (wire.Wire, error) {
	input, output, found := strings.Cut(line, " -> ")
	if !found {
		return wire.Wire{}, &ParseError{
			Code:    ErrCodeMissingArrow,
			Message: `definition must contain " -> "`,
			Line:    lineno,
			Text:    line,
		}
	}

	w, err := parseInput(input, output)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Line = lineno
			if pe.Text == "" {
				pe.Text = line
			}
			return wire.Wire{}, pe
		}
		return wire.Wire{}, &ParseError{
			Code:    ErrCodeBadDefinition,
			Message: err.Error(),
			Line:    lineno,
			Text:    line,
			Err:     err,
		}
	}
	return w, nil
}

func parseInput(input, output string) (wire.Wire, error) {
	fields := strings.Split(input, " ")
	switch len(fields) {
	case 1:
		if value, ok, err := parseConstant(fields[0]); err != nil {
			return wire.Wire{}, err
		} else if ok {
			return wire.FromValue(output, value)
		}
		return wire.FromWire(output, fields[0])

	case 2:
		if fields[0] != "NOT" {
			return wire.Wire{}, badGate(input)
		}
		return wire.FromGateNot(output, fields[1])

	case 3:
		return parseBinary(output, fields[0], fields[1], fields[2], input)

	default:
		return wire.Wire{}, badGate(input)
	}
}

func parseBinary(output, left, op, right, input string) (wire.Wire, error) {
	switch op {
	case "AND":
		if value, ok, err := parseConstant(left); err != nil {
			return wire.Wire{}, err
		} else if ok {
			return wire.FromGateAndValue(output, right, value)
		}
		if value, ok, err := parseConstant(right); err != nil {
			return wire.Wire{}, err
		} else if ok {
			return wire.FromGateAndValue(output, left, value)
		}
		return wire.FromGateAnd(output, left, right)

	case "OR":
		if value, ok, err := parseConstant(left); err != nil {
			return wire.Wire{}, err
		} else if ok {
			return wire.FromGateOrValue(output, right, value)
		}
		if value, ok, err := parseConstant(right); err != nil {
			return wire.Wire{}, err
		} else if ok {
			return wire.FromGateOrValue(output, left, value)
		}
		return wire.FromGateOr(output, left, right)

	case "LSHIFT":
		shift, err := parseShift(right)
		if err != nil {
			return wire.Wire{}, err
		}
		return wire.FromGateLShift(output, left, shift)

	case "RSHIFT":
		shift, err := parseShift(right)
		if err != nil {
			return wire.Wire{}, err
		}
		return wire.FromGateRShift(output, left, shift)

	default:
		return wire.Wire{}, badGate(input)
	}
}

// parseConstant reports whether tok is a decimal constant. A number too
// large for 16 bits is an error rather than falling through to id parsing.
func parseConstant(tok string) (uint16, bool, error) {
	value, err := strconv.ParseUint(tok, 10, 16)
	if err == nil {
		return uint16(value), true, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, false, &ParseError{
			Code:    ErrCodeValueTooLarge,
			Message: fmt.Sprintf("constant %s does not fit in 16 bits", tok),
		}
	}
	return 0, false, nil
}

func parseShift(tok string) (uint8, error) {
	shift, err := strconv.ParseUint(tok, 10, 8)
	if err != nil {
		return 0, &ParseError{
			Code:    ErrCodeBadShift,
			Message: fmt.Sprintf("shift amount %q must be a number in 0..15", tok),
		}
	}
	return uint8(shift), nil
}

func badGate(input string) *ParseError {
	return &ParseError{
		Code:    ErrCodeBadGate,
		Message: "unrecognized gate expression",
		Text:    input,
	}
}

// ParseLines parses a whole circuit description, one definition per line.
// Blank lines and lines starting with '#' are skipped. The first bad line
// aborts parsing with a line-numbered ParseError.
func ParseLines(lines []string) ([]wire.Wire, error) {
	wires := make([]wire.Wire, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, err := parseWire(line, i+1)
		if err != nil {
			return nil, err
		}
		wires = append(wires, w)
	}
	return wires, nil
}

// ParseReader parses a circuit description from r, one definition per line.
func ParseReader(r io.Reader) ([]wire.Wire, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading circuit description: %w", err)
	}
	return ParseLines(lines)
}
