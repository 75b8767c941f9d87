package sorting

import "github.com/hasbyte1/go-fixed-array/sequence"

// Merge returns a new store holding the elements of src in ascending order
// under c. Equal elements keep their relative input order.
//
// A nil comparator sorts by [Natural].
func Merge[T any](src sequence.Sequence[T], c Comparator[T]) (*sequence.Store[T], error) {
	work, err := sequence.Collect(src)
	if err != nil {
		return nil, err
	}
	mergeSort(work, orNatural(c))
	return sequence.Adopt(work), nil
}

// mergeSort sorts work bottom-up with runs of width 1, 2, 4, ... and no
// recursion. Each adjacent pair of runs is merged into scratch and copied
// straight back before the next pair is visited.
func mergeSort[T any](work []T, c Comparator[T]) {
	n := len(work)
	if n < 2 {
		return
	}
	scratch := make([]T, n)
	for k := 1; k < n; k *= 2 {
		for left := 0; left+k < n; left += 2 * k {
			mid := left + k
			right := min(left+2*k, n)

			i, j, o := left, mid, left
			for i < mid && j < right {
				// Ties take the left run, which keeps the sort stable.
				if c(work[i], work[j]) <= 0 {
					scratch[o] = work[i]
					i++
				} else {
					scratch[o] = work[j]
					j++
				}
				o++
			}
			o += copy(scratch[o:], work[i:mid])
			copy(scratch[o:], work[j:right])

			copy(work[left:right], scratch[left:right])
		}
	}
}
