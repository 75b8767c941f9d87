package sequence

import (
	"fmt"
	"iter"
)

// Sequence is the read-only capability set shared by stores, views and the
// immutable array: a length and index-based random access.
//
// It is the sole contract an external data source must satisfy to be
// ingested or composed.
//
// Portability note: this maps to Countable + ArrayAccess in PHP, or to
// __len__ + __getitem__ in Python.
type Sequence[T any] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at index i, or an error wrapping
	// [ErrIndexOutOfRange] when i is outside [0, Len()).
	At(i int) (T, error)
}

// Iter returns a lazy iterator over src in index order.
//
// Types that provide their own All method (every type in this package does)
// are iterated through it; any other Sequence is walked with At. Iteration
// stops early if At reports an error.
func Iter[T any](src Sequence[T]) iter.Seq2[int, T] {
	if it, ok := src.(interface{ All() iter.Seq2[int, T] }); ok {
		return it.All()
	}
	return func(yield func(int, T) bool) {
		n := src.Len()
		for i := 0; i < n; i++ {
			v, err := src.At(i)
			if err != nil {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// Collect copies every element of src into a new slice.
func Collect[T any](src Sequence[T]) ([]T, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrAllocation)
	}
	n := src.Len()
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrAllocation, n)
	}
	out := make([]T, n)
	for i := range out {
		v, err := src.At(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
