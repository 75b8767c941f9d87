package immutable

import (
	"fmt"
	"iter"
	"strings"

	"github.com/eapache/queue"

	"github.com/hasbyte1/go-fixed-array/sequence"
	"github.com/hasbyte1/go-fixed-array/sorting"
)

// Array is a fixed-size, immutable sequence of T.
//
// An Array wraps exactly one backing sequence: a [sequence.Store] it owns,
// or a [sequence.Range] / [sequence.Concat] view borrowing other arrays'
// storage. Nothing ever writes to the backing after construction, so every
// (index → element) mapping an Array exposes stays fixed for its lifetime,
// and an Array is safe for concurrent reads.
//
// # Creating an array
//
//	a := immutable.New(1, 2, 3, 4, 5)
//	a := immutable.From([]string{"a", "b", "c"})
//	a := immutable.Empty[int]()
//
// # Views
//
// [Array.Slice], [Array.Take], [Array.Skip], [Array.Chunk] and
// [Array.Concat] do not copy: they return arrays backed by views over the
// receiver, in O(1) time and memory. [Array.Compact] copies a view into a
// fresh store when the borrowed sources should be released.
//
// # Callbacks
//
// Callbacks receive (element, index, array) in index order, where array is
// the receiver being transformed.
type Array[T any] struct {
	backing sequence.Sequence[T]
}

// Sized is a countable source that can be iterated in index order.
type Sized[T any] interface {
	Len() int
	All() iter.Seq2[int, T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an Array from a variadic list of values (copied).
func New[T any](values ...T) *Array[T] {
	return &Array[T]{backing: sequence.StoreOf(values...)}
}

// From creates an Array from a slice (the slice is copied).
func From[T any](values []T) *Array[T] {
	return &Array[T]{backing: sequence.StoreOf(values...)}
}

// Empty creates an empty Array of type T.
func Empty[T any]() *Array[T] {
	return &Array[T]{backing: sequence.StoreOf[T]()}
}

// FromSequence copies any countable, randomly addressable source into a new
// Array. An *Array source is returned as is.
func FromSequence[T any](src sequence.Sequence[T]) (*Array[T], error) {
	if a, ok := src.(*Array[T]); ok && a != nil {
		return a, nil
	}
	st, err := sequence.CopyOf(src)
	if err != nil {
		return nil, err
	}
	return &Array[T]{backing: st}, nil
}

// FromSized pre-sizes a store from src.Len() and fills it in one pass.
// Returns [ErrAllocation] if the reported length is negative or src yields
// a different number of elements than it reported.
func FromSized[T any](src Sized[T]) (*Array[T], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrAllocation)
	}
	n := src.Len()
	st, err := sequence.NewStore[T](n)
	if err != nil {
		return nil, err
	}
	filled := 0
	for _, v := range src.All() {
		if filled == n {
			return nil, fmt.Errorf("%w: source yielded more than %d elements", ErrAllocation, n)
		}
		if err := st.Set(filled, v); err != nil {
			return nil, err
		}
		filled++
	}
	if filled != n {
		return nil, fmt.Errorf("%w: source yielded %d of %d elements", ErrAllocation, filled, n)
	}
	return &Array[T]{backing: st}, nil
}

// FromIter builds an Array from an iterator of unknown length. The elements
// are buffered in a FIFO queue first, then moved into a store of the exact
// size.
func FromIter[T any](seq iter.Seq[T]) *Array[T] {
	if seq == nil {
		return Empty[T]()
	}
	q := queue.New()
	for v := range seq {
		q.Add(v)
	}
	items := make([]T, q.Length())
	for i := range items {
		// A nil interface element comes back as the zero T.
		items[i], _ = q.Remove().(T)
	}
	return &Array[T]{backing: sequence.Adopt(items)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

func (a *Array[T]) seq() sequence.Sequence[T] {
	if a == nil || a.backing == nil {
		return sequence.StoreOf[T]()
	}
	return a.backing
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.seq().Len() }

// IsEmpty reports whether the array has no elements.
func (a *Array[T]) IsEmpty() bool { return a.Len() == 0 }

// IsNotEmpty reports whether the array has at least one element.
func (a *Array[T]) IsNotEmpty() bool { return a.Len() > 0 }

// Get returns the element at index i, or an error wrapping
// [ErrIndexOutOfRange].
func (a *Array[T]) Get(i int) (T, error) { return a.seq().At(i) }

// At is [Array.Get]. It lets an Array be used as a [sequence.Sequence].
func (a *Array[T]) At(i int) (T, error) { return a.Get(i) }

// Set always fails with [ErrImmutabilityViolation]; the array is left as it
// was.
func (a *Array[T]) Set(i int, _ T) error {
	return fmt.Errorf("%w: cannot set index %d", ErrImmutabilityViolation, i)
}

// First returns the first element.
// Returns the zero value and false when the array is empty.
func (a *Array[T]) First() (T, bool) {
	v, err := a.Get(0)
	return v, err == nil
}

// Last returns the last element.
// Returns the zero value and false when the array is empty.
func (a *Array[T]) Last() (T, bool) {
	v, err := a.Get(a.Len() - 1)
	return v, err == nil
}

// Values returns every element, in index order, as a new slice.
func (a *Array[T]) Values() []T {
	if v, ok := a.seq().(interface{ Values() []T }); ok {
		return v.Values()
	}
	out, err := sequence.Collect(a.seq())
	if err != nil {
		return []T{}
	}
	return out
}

// ToSlice is an alias for [Array.Values].
func (a *Array[T]) ToSlice() []T { return a.Values() }

// All returns a lazy, restartable iterator over (index, element) pairs.
func (a *Array[T]) All() iter.Seq2[int, T] { return sequence.Iter(a.seq()) }

// Segments reports how many stores the array reads from: 1 for a store or
// a slice of one, the flattened member count for a concatenation.
func (a *Array[T]) Segments() int {
	if c, ok := a.seq().(*sequence.Concat[T]); ok {
		return c.Members()
	}
	return 1
}

// Compact returns an array backed by a fresh store holding the same
// elements, dropping references to any sources a view was borrowing.
func (a *Array[T]) Compact() *Array[T] {
	if _, ok := a.seq().(*sequence.Store[T]); ok {
		return a
	}
	return &Array[T]{backing: sequence.Adopt(a.Values())}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Walk calls fn(element, index, a) for every element, for side effects.
// Returns a unchanged so it can be used in chains.
func (a *Array[T]) Walk(fn func(T, int, *Array[T])) *Array[T] {
	for i, v := range a.All() {
		fn(v, i, a)
	}
	return a
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element for which fn(element, index, a) returns
// true. Returns the zero value and false when nothing matches.
func (a *Array[T]) Find(fn func(T, int, *Array[T]) bool) (T, bool) {
	for i, v := range a.All() {
		if fn(v, i, a) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element for which fn returns
// true, or -1.
func (a *Array[T]) FindIndex(fn func(T, int, *Array[T]) bool) int {
	for i, v := range a.All() {
		if fn(v, i, a) {
			return i
		}
	}
	return -1
}

// Contains reports whether at least one element satisfies fn.
func (a *Array[T]) Contains(fn func(T) bool) bool {
	for _, v := range a.All() {
		if fn(v) {
			return true
		}
	}
	return false
}

// Some is an alias for [Array.Contains].
func (a *Array[T]) Some(fn func(T) bool) bool { return a.Contains(fn) }

// Every reports whether every element satisfies fn. It is true for an
// empty array.
func (a *Array[T]) Every(fn func(T) bool) bool {
	return !a.Contains(func(v T) bool { return !fn(v) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new array of the same length holding fn(element, index, a)
// for every element.
//
// To change the element type use the package-level [Map].
func (a *Array[T]) Map(fn func(T, int, *Array[T]) T) *Array[T] {
	return Map(a, fn)
}

// Filter returns a new array with the elements for which fn returns true,
// in their original order.
//
// Survivors are written into a scratch store as large as the receiver in a
// single pass; the store is then shrunk to the survivor count.
func (a *Array[T]) Filter(fn func(T) bool) *Array[T] {
	scratch := sequence.Adopt(make([]T, a.Len()))
	kept := 0
	for _, v := range a.All() {
		if fn(v) {
			_ = scratch.Set(kept, v) // kept < Len
			kept++
		}
	}
	_ = scratch.Shrink(kept)
	return &Array[T]{backing: scratch}
}

// Reject returns a new array without the elements for which fn returns
// true. It is the complement of [Array.Filter].
func (a *Array[T]) Reject(fn func(T) bool) *Array[T] {
	return a.Filter(func(v T) bool { return !fn(v) })
}

// Reduce folds the elements left to right:
// acc = fn(acc, element, index, a), starting from initial.
//
// To fold into a different type use the package-level [Reduce].
func (a *Array[T]) Reduce(fn func(T, T, int, *Array[T]) T, initial T) T {
	return Reduce(a, fn, initial)
}

// Reverse returns a new array with the elements in reverse order.
func (a *Array[T]) Reverse() *Array[T] {
	st := sequence.Adopt(a.Values())
	for i, j := 0, st.Len()-1; i < j; i, j = i+1, j-1 {
		_ = st.Swap(i, j)
	}
	return &Array[T]{backing: st}
}

// ─────────────────────────────────────────────────────────────────────────────
// Views
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns a view from begin up to, but not including, end.
// Negative bounds count back from the end; end defaults to Len().
// Runs in O(1) time and memory.
func (a *Array[T]) Slice(begin int, end ...int) *Array[T] {
	r, err := sequence.Slice(a.seq(), begin, end...)
	if err != nil {
		return Empty[T]()
	}
	return &Array[T]{backing: r}
}

// Take returns a view of at most n elements from the start.
// A negative n takes from the end (Take(-3) is the last 3 elements).
func (a *Array[T]) Take(n int) *Array[T] {
	if n < 0 {
		return a.Slice(n)
	}
	return a.Slice(0, n)
}

// Skip returns a view without the first n elements.
// A negative n drops elements from the end instead.
func (a *Array[T]) Skip(n int) *Array[T] {
	if n < 0 {
		return a.Slice(0, n)
	}
	return a.Slice(n)
}

// Chunk splits the array into consecutive views of size elements; the last
// one may be shorter. Returns nil if size <= 0 or the array is empty.
func (a *Array[T]) Chunk(size int) []*Array[T] {
	n := a.Len()
	if size <= 0 || n == 0 {
		return nil
	}
	chunks := make([]*Array[T], 0, (n+size-1)/size)
	for i := 0; i < n; i += size {
		chunks = append(chunks, a.Slice(i, i+size))
	}
	return chunks
}

// Concat returns a view of a followed by others. Array arguments are
// borrowed in O(1); concatenations are flattened, so chaining Concat calls
// never nests.
//
// Any other [sequence.Sequence] is copied into a fresh store first, since the
// caller may still write to it or its reads may fail later. A failed read is
// returned with the member's position in [a, others...].
//
// Returns an error wrapping [ErrInvalidArgument] when one of others is nil;
// the message names its position in [a, others...].
func (a *Array[T]) Concat(others ...sequence.Sequence[T]) (*Array[T], error) {
	members := make([]sequence.Sequence[T], 0, len(others)+1)
	members = append(members, a.seq())
	for i, o := range others {
		switch src := o.(type) {
		case nil:
			members = append(members, nil)
		case *Array[T]:
			if src == nil {
				members = append(members, nil)
				continue
			}
			members = append(members, src.seq())
		default:
			st, err := sequence.CopyOf(src)
			if err != nil {
				return nil, fmt.Errorf("source at position %d: %w", i+1, err)
			}
			members = append(members, st)
		}
	}
	c, err := sequence.Join(members...)
	if err != nil {
		return nil, err
	}
	return &Array[T]{backing: c}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a new array sorted ascending under cmp with a stable merge
// sort. A nil cmp sorts by the element type's natural ordering, see
// [sorting.Natural].
func (a *Array[T]) Sort(cmp sorting.Comparator[T]) *Array[T] {
	if cmp == nil {
		return sorted[T](sorting.SortNatural(a.seq()))
	}
	return sorted[T](sorting.Merge(a.seq(), cmp))
}

// SortHeap returns a new array sorted ascending under the ordering object o
// with a heap sort. A [*sorting.Heap] may be passed; only its comparator is
// used.
func (a *Array[T]) SortHeap(o sorting.Order[T]) *Array[T] {
	return sorted[T](sorting.HeapSort(a.seq(), o))
}

// SortWith returns a new array sorted by the default driver of m.
func (a *Array[T]) SortWith(m *sorting.Manager[T], cmp sorting.Comparator[T]) (*Array[T], error) {
	st, err := m.Sort(a.seq(), cmp)
	if err != nil {
		return nil, err
	}
	return &Array[T]{backing: st}, nil
}

// sorted wraps a store produced by the sort engine. Backings are stores the
// package built and views over them (foreign sources are copied on the way
// in), so reads never fail.
func sorted[T any](st *sequence.Store[T], err error) *Array[T] {
	if err != nil {
		panic(fmt.Errorf("immutable: sort failed: %w", err))
	}
	return &Array[T]{backing: st}
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Join renders every element with its natural string form.
//
// Without wrap, elements are separated by sep (nothing before the first or
// after the last). With wrap, each element is rendered as sep+element+wrap
// and the pieces are concatenated with nothing in between:
//
//	immutable.New(1, 2, 3).Join(",")           // "1,2,3"
//	immutable.New(1, 2, 3).Join("<li>", "</li>") // "<li>1</li><li>2</li><li>3</li>"
func (a *Array[T]) Join(sep string, wrap ...string) string {
	var b strings.Builder
	for i, v := range a.All() {
		if len(wrap) > 0 {
			b.WriteString(sep)
			fmt.Fprint(&b, v)
			b.WriteString(wrap[0])
			continue
		}
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}
