package sorting

import "cmp"

// Comparator orders two values: negative when a sorts before b, zero when
// they are equal, positive when a sorts after b.
//
// It must describe a total order that stays consistent for the duration of
// one sort call; an inconsistent comparator yields an unspecified order.
type Comparator[T any] func(a, b T) int

// Compare calls c. A nil Comparator falls back to [Natural].
// It makes every Comparator usable as an [Order].
func (c Comparator[T]) Compare(a, b T) int {
	if c == nil {
		return Natural(a, b)
	}
	return c(a, b)
}

// Order is a strategy object that orders values. [Comparator] and [Heap]
// both implement it.
type Order[T any] interface {
	Compare(a, b T) int
}

// Reverse returns a comparator that inverts c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return c.Compare(b, a) }
}

// Ordered returns the comparator for a type with a built-in ordering.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

func orNatural[T any](c Comparator[T]) Comparator[T] {
	if c == nil {
		return Natural[T]
	}
	return c
}
