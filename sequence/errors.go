package sequence

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by stores and views.
//
// Use [errors.Is] for comparisons:
//
//	_, err := st.At(10)
//	if errors.Is(err, sequence.ErrIndexOutOfRange) {
//	    // ...
//	}
var (
	// ErrAllocation is returned when the capacity of a store cannot be
	// determined or reserved, or when a sized source delivers a different
	// number of elements than it reported.
	ErrAllocation = errors.New("sequence: cannot allocate store")

	// ErrIndexOutOfRange is returned when an index is outside [0, Len()).
	ErrIndexOutOfRange = errors.New("sequence: index out of range")

	// ErrInvalidArgument is returned when a composition argument does not
	// satisfy the countable random-access contract.
	ErrInvalidArgument = errors.New("sequence: invalid argument")

	// ErrInvalidRange is returned by [Slice] when the source cannot be
	// sliced.
	ErrInvalidRange = errors.New("sequence: invalid range source")
)

func indexError(i, n int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
}
