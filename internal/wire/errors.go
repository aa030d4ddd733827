package wire

import (
	"errors"
	"fmt"
)

// DefinitionError reports a wire definition rejected at construction time.
//
// Construction errors are never silently ignored: a wire that fails
// validation is returned as an error before any store mutation can happen.
type DefinitionError struct {
	// Code identifies the error category.
	Code DefinitionErrorCode

	// Message is a human-readable description.
	Message string

	// Wire is the offending identifier, when one is involved.
	Wire string
}

// DefinitionErrorCode categorizes definition errors.
type DefinitionErrorCode string

const (
	// ErrCodeInvalidID indicates a malformed wire identifier.
	ErrCodeInvalidID DefinitionErrorCode = "INVALID_ID"

	// ErrCodeSelfReference indicates a wire whose input names its own output.
	ErrCodeSelfReference DefinitionErrorCode = "SELF_REFERENCE"

	// ErrCodeShiftTooLarge indicates a shift amount outside 0..15.
	ErrCodeShiftTooLarge DefinitionErrorCode = "SHIFT_TOO_LARGE"
)

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	if e.Wire != "" {
		return fmt.Sprintf("%s: %s (wire=%q)", e.Code, e.Message, e.Wire)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidID reports whether err is an invalid-identifier definition error.
// Uses errors.As to handle wrapped errors.
func IsInvalidID(err error) bool {
	var de *DefinitionError
	return errors.As(err, &de) && de.Code == ErrCodeInvalidID
}

// IsSelfReference reports whether err is a self-reference definition error.
func IsSelfReference(err error) bool {
	var de *DefinitionError
	return errors.As(err, &de) && de.Code == ErrCodeSelfReference
}

// IsShiftTooLarge reports whether err is a shift-range definition error.
func IsShiftTooLarge(err error) bool {
	var de *DefinitionError
	return errors.As(err, &de) && de.Code == ErrCodeShiftTooLarge
}

func newInvalidIDError(id string) *DefinitionError {
	return &DefinitionError{
		Code:    ErrCodeInvalidID,
		Message: "wire id must be non-empty ASCII lowercase",
		Wire:    id,
	}
}

func newSelfReferenceError(id string) *DefinitionError {
	return &DefinitionError{
		Code:    ErrCodeSelfReference,
		Message: "wire input references its own output",
		Wire:    id,
	}
}

func newShiftTooLargeError(shift uint8) *DefinitionError {
	return &DefinitionError{
		Code:    ErrCodeShiftTooLarge,
		Message: fmt.Sprintf("shift amount %d exceeds 15", shift),
	}
}
