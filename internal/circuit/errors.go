package circuit

import (
	"errors"
	"fmt"

	"github.com/nanocorp/wiring/internal/wire"
)

// StoreError reports a store operation that failed without mutating the
// store: duplicate insertion or lookup/removal of an absent id.
type StoreError struct {
	// Code identifies the error category.
	Code StoreErrorCode

	// Message is a human-readable description.
	Message string

	// ID is the wire id involved.
	ID wire.ID
}

// StoreErrorCode categorizes store errors.
type StoreErrorCode string

const (
	// ErrCodeDuplicateID indicates insertion of an id already present.
	ErrCodeDuplicateID StoreErrorCode = "DUPLICATE_ID"

	// ErrCodeUnknownID indicates lookup or removal of an absent id.
	ErrCodeUnknownID StoreErrorCode = "UNKNOWN_ID"
)

// Error implements the error interface.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s (wire=%q)", e.Code, e.Message, e.ID)
}

// IsDuplicateID reports whether err is a duplicate-insertion store error.
// Uses errors.As to handle wrapped errors.
func IsDuplicateID(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrCodeDuplicateID
}

// IsUnknownID reports whether err is an absent-id store error.
func IsUnknownID(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrCodeUnknownID
}

func newDuplicateIDError(id wire.ID) *StoreError {
	return &StoreError{Code: ErrCodeDuplicateID, Message: "wire id already exists", ID: id}
}

func newUnknownIDError(id wire.ID) *StoreError {
	return &StoreError{Code: ErrCodeUnknownID, Message: "no wire with this id", ID: id}
}

// LoopError reports a genuine cycle among unresolved wires discovered during
// a resolution pass. The pass is aborted; wires finalized before the cycle
// was hit keep their signals.
//
// At names one wire known to sit on the cycle. Identifying the full cycle
// membership is not attempted.
type LoopError struct {
	At wire.ID
}

// Error implements the error interface.
func (e *LoopError) Error() string {
	return fmt.Sprintf("LOOP_DETECTED: signal dependency cycle through wire %q", e.At)
}

// IsLoop reports whether err is a cycle-detection error.
// Uses errors.As to handle wrapped errors.
func IsLoop(err error) bool {
	var le *LoopError
	return errors.As(err, &le)
}
