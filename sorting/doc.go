// Package sorting is the sort engine behind the immutable array.
//
// Every strategy copies its input into a fresh buffer, sorts that buffer and
// hands it back as a new [sequence.Store]. The input is never written to.
//
// # Strategies
//
//   - [Merge]: bottom-up, iterative, stable merge sort. O(n log n) time,
//     O(n) scratch space.
//   - [Quick]: quicksort driven by an explicit stack of index ranges instead
//     of recursion. Not stable.
//   - [HeapSort]: drains a binary [Heap] ordered by an [Order]. Not stable.
//   - [SortNatural]: the element type's natural ordering, see [Natural].
//
// All strategies emit ascending order under the comparator they are given:
//
//	st, _ := sorting.Merge[int](src, func(a, b int) int { return a - b })
//
// # Drivers
//
// [Manager] is a named registry of strategies with a default, for callers
// that pick an algorithm by configuration:
//
//	m := sorting.NewDefaultManager[string]()
//	_ = m.SetDefaultDriver(sorting.DriverQuick)
//	st, _ := m.Sort(src, strings.Compare)
package sorting
