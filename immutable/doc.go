// Package immutable provides Array, a generic fixed-size collection that is
// never modified after construction.
//
// # Overview
//
// Every transformation returns a *new* Array and leaves the receiver intact:
//
//	a := immutable.New(5, 3, 4, 1, 2)
//	b := a.Sort(func(x, y int) int { return x - y })   // [1 2 3 4 5]
//	c := b.Filter(func(n int) bool { return n%2 == 1 }) // [1 3 5]
//	// a is still [5 3 4 1 2]
//
// Writes through the public surface fail with [ErrImmutabilityViolation]:
//
//	err := a.Set(0, 42) // errors.Is(err, immutable.ErrImmutabilityViolation)
//
// # Zero-copy views
//
// Slicing and concatenation do not copy elements. The result is backed by a
// view over the receiver's storage and costs O(1) time and memory no matter
// how large the inputs are:
//
//	head := a.Slice(0, 3)
//	both, _ := head.Concat(immutable.New(9, 9))
//
// # Sorting
//
// [Array.Sort] uses a stable, iterative merge sort; a nil comparator falls
// back to the natural ordering of the element type. [Array.SortHeap] takes
// an ordering object and uses heap sort. [Array.SortWith] routes through a
// [sorting.Manager] so the algorithm can be chosen by name.
//
// # Type-transforming operations
//
// Go methods cannot introduce new type parameters, so operations that
// change the element type are package-level functions:
//
//	labels := immutable.Map(a, func(n, _ int, _ *immutable.Array[int]) string {
//	    return strconv.Itoa(n)
//	})
//
// # Serialisation
//
// An Array always encodes as an ordered list: [Array.ToJSON] and
// [Array.MarshalMsgpack] both produce arrays, never objects.
// [Array.Fingerprint] hashes that encoding with BLAKE2b.
package immutable
