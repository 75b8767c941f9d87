package sorting

import "github.com/hasbyte1/go-fixed-array/sequence"

// Partitions at or below this size are finished with insertion sort.
const insertionThreshold = 12

// Quick returns a new store holding the elements of src in ascending order
// under c. The relative order of equal elements is not preserved.
//
// A nil comparator sorts by [Natural].
func Quick[T any](src sequence.Sequence[T], c Comparator[T]) (*sequence.Store[T], error) {
	work, err := sequence.Collect(src)
	if err != nil {
		return nil, err
	}
	quickSort(work, orNatural(c))
	return sequence.Adopt(work), nil
}

type span struct{ lo, hi int }

// quickSort keeps pending [lo, hi) ranges on an explicit stack. The larger
// side of every partition is pushed and the smaller one is processed next,
// so the stack never holds more than O(log n) ranges.
func quickSort[T any](s []T, c Comparator[T]) {
	stack := []span{{0, len(s)}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lo, hi := top.lo, top.hi
		for hi-lo > insertionThreshold {
			lt, gt := partition(s, lo, hi, c)
			if lt-lo < hi-gt {
				stack = append(stack, span{gt, hi})
				hi = lt
			} else {
				stack = append(stack, span{lo, lt})
				lo = gt
			}
		}
		insertionSort(s, lo, hi, c)
	}
}

// partition splits s[lo:hi] three ways around a median-of-three pivot:
// s[lo:lt] < pivot, s[lt:gt] == pivot, s[gt:hi] > pivot.
func partition[T any](s []T, lo, hi int, c Comparator[T]) (lt, gt int) {
	m := int(uint(lo+hi) >> 1)
	medianOfThree(s, lo, m, hi-1, c)
	pivot := s[m]

	lt, gt = lo, hi
	for i := lo; i < gt; {
		switch r := c(s[i], pivot); {
		case r < 0:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case r > 0:
			gt--
			s[i], s[gt] = s[gt], s[i]
		default:
			i++
		}
	}
	return lt, gt
}

// medianOfThree orders s[a] <= s[b] <= s[d].
func medianOfThree[T any](s []T, a, b, d int, c Comparator[T]) {
	if c(s[b], s[a]) < 0 {
		s[a], s[b] = s[b], s[a]
	}
	if c(s[d], s[b]) < 0 {
		s[b], s[d] = s[d], s[b]
		if c(s[b], s[a]) < 0 {
			s[a], s[b] = s[b], s[a]
		}
	}
}

func insertionSort[T any](s []T, lo, hi int, c Comparator[T]) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && c(s[j], s[j-1]) < 0; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
