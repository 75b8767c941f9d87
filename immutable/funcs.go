package immutable

// This file contains package-level generic functions for operations that
// turn an Array[T] into an Array[U] or a U. Go methods cannot introduce
// their own type parameters, so these are stand-alone functions:
//
//	labels := immutable.Map(immutable.New(1, 2, 3),
//	    func(n, _ int, _ *immutable.Array[int]) string { return strconv.Itoa(n) })

import (
	"cmp"

	"github.com/hasbyte1/go-fixed-array/sequence"
	"github.com/hasbyte1/go-fixed-array/sorting"
)

// Map applies fn(element, index, a) to every element in index order and
// returns the results as a new Array[U] of the same length.
func Map[T, U any](a *Array[T], fn func(T, int, *Array[T]) U) *Array[U] {
	out := make([]U, a.Len())
	for i, v := range a.All() {
		out[i] = fn(v, i, a)
	}
	return &Array[U]{backing: sequence.Adopt(out)}
}

// Reduce folds a left to right into a value of type U:
// acc = fn(acc, element, index, a), starting from initial.
//
//	sum := immutable.Reduce(immutable.New(1, 2, 3, 4, 5),
//	    func(acc, n, _ int, _ *immutable.Array[int]) int { return acc + n }, 0)
func Reduce[T, U any](a *Array[T], fn func(U, T, int, *Array[T]) U, initial U) U {
	acc := initial
	for i, v := range a.All() {
		acc = fn(acc, v, i, a)
	}
	return acc
}

// SortOrdered returns a new array sorted ascending by the built-in ordering
// of T.
func SortOrdered[T cmp.Ordered](a *Array[T]) *Array[T] {
	return sorted[T](sorting.SortOrdered(a.seq()))
}
