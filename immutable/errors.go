package immutable

import (
	"errors"

	"github.com/hasbyte1/go-fixed-array/sequence"
)

// Sentinel errors returned by Array operations.
//
// The storage errors are re-exported from package sequence so callers only
// need this package to match them with [errors.Is].
var (
	// ErrImmutabilityViolation is returned by every attempt to write
	// through an Array.
	ErrImmutabilityViolation = errors.New("immutable: array cannot be modified")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("immutable: macro not found")

	// ErrAllocation is returned when a constructor cannot size the backing
	// store.
	ErrAllocation = sequence.ErrAllocation

	// ErrIndexOutOfRange is returned when an index is outside [0, Len()).
	ErrIndexOutOfRange = sequence.ErrIndexOutOfRange

	// ErrInvalidArgument is returned by [Array.Concat] for a nil argument.
	ErrInvalidArgument = sequence.ErrInvalidArgument
)
