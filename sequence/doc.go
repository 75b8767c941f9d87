// Package sequence provides the fixed-size backing store and the zero-copy
// views that the immutable array is built from.
//
// # Overview
//
// Every type in this package satisfies [Sequence][T], the read-only
// capability set {Len, At}:
//
//	st := sequence.StoreOf(1, 2, 3, 4, 5, 6)
//	r, _ := sequence.Slice[int](st, 1, -1)      // 2, 3, 4, 5
//	c, _ := sequence.Join[int](r, st)           // 2, 3, 4, 5, 1, 2, 3, 4, 5, 6
//
// # Borrowing
//
// [Range] and [Concat] never copy or own their sources. They only ever see a
// source through the [Sequence] interface, which exposes no write methods, so
// a view cannot mutate what it borrows. Bounds and lengths are captured once
// at construction.
//
// # Stores
//
// [Store] is the only writable type. Set, Swap and Shrink are meant for the
// builders that fill a store before it is handed to an immutable wrapper
// (sort buffers, filter scratch space). Once wrapped, nobody writes to it.
package sequence
