package sequence

import (
	"fmt"
	"iter"
)

// maxCapacity bounds a single store. Requests above it fail with
// [ErrAllocation] instead of panicking inside make.
const maxCapacity = 1<<31 - 1

// Store is a fixed-length, randomly addressable sequence of elements.
//
// Its length is set at construction and only ever changes through a single
// call to [Store.Shrink]. The zero value is an empty store.
type Store[T any] struct {
	items []T
}

// NewStore reserves a store of n zero-valued slots.
// Returns [ErrAllocation] if n is negative or too large.
func NewStore[T any](n int) (*Store[T], error) {
	if n < 0 || n > maxCapacity {
		return nil, fmt.Errorf("%w: capacity %d", ErrAllocation, n)
	}
	return &Store[T]{items: make([]T, n)}, nil
}

// StoreOf builds a store holding values in order (the values are copied).
func StoreOf[T any](values ...T) *Store[T] {
	dst := make([]T, len(values))
	copy(dst, values)
	return &Store[T]{items: dst}
}

// Adopt wraps items as a store without copying. The caller hands over
// ownership and must not touch items afterwards.
func Adopt[T any](items []T) *Store[T] {
	if items == nil {
		items = []T{}
	}
	return &Store[T]{items: items}
}

// CopyOf builds a store by copying every element out of src.
func CopyOf[T any](src Sequence[T]) (*Store[T], error) {
	if st, ok := src.(*Store[T]); ok {
		if st == nil {
			return nil, fmt.Errorf("%w: nil source", ErrAllocation)
		}
		return StoreOf(st.items...), nil
	}
	items, err := Collect(src)
	if err != nil {
		return nil, err
	}
	return &Store[T]{items: items}, nil
}

// Len returns the logical length of the store.
func (s *Store[T]) Len() int { return len(s.items) }

// At returns the element at index i.
func (s *Store[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, indexError(i, len(s.items))
	}
	return s.items[i], nil
}

// Set writes v at index i.
//
// Set is for builders that fill a store before wrapping it. Nothing may call
// Set on a store that has already been published.
func (s *Store[T]) Set(i int, v T) error {
	if i < 0 || i >= len(s.items) {
		return indexError(i, len(s.items))
	}
	s.items[i] = v
	return nil
}

// Swap exchanges the elements at i and j.
func (s *Store[T]) Swap(i, j int) error {
	n := len(s.items)
	if i < 0 || i >= n {
		return indexError(i, n)
	}
	if j < 0 || j >= n {
		return indexError(j, n)
	}
	s.items[i], s.items[j] = s.items[j], s.items[i]
	return nil
}

// Shrink irrevocably reduces the logical length to n.
// Elements past n become unreachable. Growing is not possible: n greater
// than the current length, or negative, returns [ErrInvalidArgument].
func (s *Store[T]) Shrink(n int) error {
	if n < 0 || n > len(s.items) {
		return fmt.Errorf("%w: cannot shrink length %d to %d", ErrInvalidArgument, len(s.items), n)
	}
	// Clear the tail so the dropped elements can be collected.
	clear(s.items[n:])
	s.items = s.items[:n:n]
	return nil
}

// Values returns a copy of the elements in index order.
func (s *Store[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// All returns an iterator over (index, element) pairs.
func (s *Store[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}
