package sequence

import (
	"fmt"
	"iter"
)

// Range is a read-only window over a borrowed [Sequence].
//
// The window is resolved once, in [Slice], and never recomputed: begin and
// count are snapshots, and begin+count never exceeds the source length
// observed at construction.
type Range[T any] struct {
	src   Sequence[T]
	begin int
	count int
}

// Slice returns a view of src from begin up to, but not including, end.
//
// Both bounds may be negative, in which case they count back from the end
// of src. end is optional and defaults to src.Len(). Out-of-range bounds are
// clamped rather than rejected:
//
//	Slice(s, 1)      // everything after the first element
//	Slice(s, -2)     // the last two elements
//	Slice(s, 0, -1)  // everything except the last element
//	Slice(s, 5, 2)   // empty
//
// Returns [ErrInvalidRange] only when src is nil.
func Slice[T any](src Sequence[T], begin int, end ...int) (*Range[T], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidRange)
	}
	n := src.Len()
	if begin < 0 {
		begin = max(0, n+begin)
	}
	begin = min(begin, n)

	stop := n
	if len(end) > 0 {
		stop = end[0]
		if stop < 0 {
			stop = max(begin, n+stop)
		}
		stop = min(stop, n)
	}
	count := max(0, stop-begin)

	// A range over a range reads straight from the innermost source.
	if r, ok := src.(*Range[T]); ok {
		return &Range[T]{src: r.src, begin: r.begin + begin, count: count}, nil
	}
	return &Range[T]{src: src, begin: begin, count: count}, nil
}

// Len returns the number of elements in the window.
func (r *Range[T]) Len() int { return r.count }

// Offset returns the position of the window's first element in the
// borrowed source.
func (r *Range[T]) Offset() int { return r.begin }

// At returns the element at index i of the window.
func (r *Range[T]) At(i int) (T, error) {
	if i < 0 || i >= r.count {
		var zero T
		return zero, indexError(i, r.count)
	}
	return r.src.At(i + r.begin)
}

// Values returns a copy of the window's elements in order.
func (r *Range[T]) Values() []T {
	out := make([]T, 0, r.count)
	for _, v := range r.All() {
		out = append(out, v)
	}
	return out
}

// All returns an iterator over the window. An empty window yields nothing
// and never touches the source.
func (r *Range[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < r.count; i++ {
			v, err := r.src.At(i + r.begin)
			if err != nil {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}
