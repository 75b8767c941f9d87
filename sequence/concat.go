package sequence

import (
	"fmt"
	"iter"
)

// Concat presents an ordered list of borrowed sequences as one contiguous
// index space.
//
// Nested Concat arguments are unrolled at construction, so a lookup walks at
// most Members() entries no matter how the view was built up.
type Concat[T any] struct {
	members []Sequence[T]
	count   int
}

// Join concatenates sources in order.
//
// Every source must be non-nil; a nil source fails with
// [ErrInvalidArgument] naming its position. Empty sources are kept out of
// the member list since they can never resolve an index.
func Join[T any](sources ...Sequence[T]) (*Concat[T], error) {
	c := &Concat[T]{members: make([]Sequence[T], 0, len(sources))}
	for pos, src := range sources {
		if src == nil {
			return nil, fmt.Errorf("%w: source at position %d is nil", ErrInvalidArgument, pos)
		}
		if inner, ok := src.(*Concat[T]); ok {
			c.members = append(c.members, inner.members...)
			c.count += inner.count
			continue
		}
		n := src.Len()
		if n < 0 {
			return nil, fmt.Errorf("%w: source at position %d reports length %d", ErrInvalidArgument, pos, n)
		}
		if n == 0 {
			continue
		}
		c.members = append(c.members, src)
		c.count += n
	}
	return c, nil
}

// Len returns the total length, computed once at construction.
func (c *Concat[T]) Len() int { return c.count }

// Members returns the number of flattened member sequences.
func (c *Concat[T]) Members() int { return len(c.members) }

// At resolves i to a member and a local offset by walking cumulative
// lengths in member order, then delegates to that member.
func (c *Concat[T]) At(i int) (T, error) {
	if i < 0 || i >= c.count {
		var zero T
		return zero, indexError(i, c.count)
	}
	for _, m := range c.members {
		n := m.Len()
		if i < n {
			return m.At(i)
		}
		i -= n
	}
	var zero T
	return zero, indexError(i, c.count)
}

// Values returns a copy of every element in order.
func (c *Concat[T]) Values() []T {
	out := make([]T, 0, c.count)
	for _, v := range c.All() {
		out = append(out, v)
	}
	return out
}

// All returns an iterator yielding each member's elements in member order.
func (c *Concat[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		idx := 0
		for _, m := range c.members {
			for _, v := range Iter(m) {
				if !yield(idx, v) {
					return
				}
				idx++
			}
		}
	}
}
