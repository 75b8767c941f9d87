package sorting

import (
	"fmt"

	"github.com/hasbyte1/go-fixed-array/sequence"
)

// Heap is a binary max-heap: under its comparator, every parent compares
// greater than or equal to its children, and [Heap.Pop] returns the
// greatest element.
//
// The comparator is captured once by [NewHeap] and never reassigned.
// A Heap is not safe for concurrent use.
type Heap[T any] struct {
	items []T
	cmp   Comparator[T]
}

// NewHeap returns an empty heap ordered by c. A nil c orders by [Natural].
func NewHeap[T any](c Comparator[T]) *Heap[T] {
	return &Heap[T]{cmp: orNatural(c)}
}

// Compare reports the heap's ordering of a and b, so a Heap can be passed
// wherever an [Order] is expected. A nil Heap orders by [Natural].
func (h *Heap[T]) Compare(a, b T) int {
	if h == nil {
		return Natural(a, b)
	}
	return h.cmp(a, b)
}

// Len returns the number of queued elements.
func (h *Heap[T]) Len() int { return len(h.items) }

// Push inserts v.
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.up(len(h.items) - 1)
}

// Peek returns the greatest element without removing it.
// Returns the zero value and false when the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Pop removes and returns the greatest element.
// Returns the zero value and false when the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, false
	}
	top := h.items[0]
	h.items[0] = h.items[n-1]
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	h.down(0)
	return top, true
}

func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.items[i], h.items[parent]) <= 0 {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *Heap[T]) down(i int) {
	n := len(h.items)
	for {
		child := 2*i + 1
		if child >= n {
			return
		}
		if child+1 < n && h.cmp(h.items[child+1], h.items[child]) > 0 {
			child++
		}
		if h.cmp(h.items[i], h.items[child]) >= 0 {
			return
		}
		h.items[i], h.items[child] = h.items[child], h.items[i]
		i = child
	}
}

// HeapSort returns a new store holding the elements of src in ascending
// order under o.
//
// Every element is pushed onto a heap ordered by the reverse of o, and the
// heap is then drained in extraction order. Equal elements may come out in
// any relative order. A nil o, or a nil *Heap, sorts by [Natural].
func HeapSort[T any](src sequence.Sequence[T], o Order[T]) (*sequence.Store[T], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", sequence.ErrAllocation)
	}
	if o == nil {
		o = Comparator[T](nil)
	}
	h := NewHeap(Reverse[T](o.Compare))
	h.items = make([]T, 0, src.Len())
	for _, v := range sequence.Iter(src) {
		h.Push(v)
	}
	if h.Len() != src.Len() {
		return nil, fmt.Errorf("%w: source yielded %d of %d elements", sequence.ErrAllocation, h.Len(), src.Len())
	}

	out := make([]T, 0, h.Len())
	for h.Len() > 0 {
		v, _ := h.Pop()
		out = append(out, v)
	}
	return sequence.Adopt(out), nil
}
