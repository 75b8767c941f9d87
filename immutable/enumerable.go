package immutable

import (
	"iter"

	"github.com/hasbyte1/go-fixed-array/sequence"
)

// Enumerable is the read-only surface satisfied by [Array][T].
//
// Accept Enumerable in your own functions so that callers can substitute
// alternative implementations without depending on the concrete *Array
// type. It embeds [sequence.Sequence], so any Enumerable can also be sliced
// and concatenated by package sequence.
//
// Portability note: this maps to an Iterator protocol in Python (with
// __len__/__getitem__/__iter__) or a ReadonlyArray in TypeScript.
type Enumerable[T any] interface {
	sequence.Sequence[T]

	// All returns a lazy iterator over (index, element) pairs.
	All() iter.Seq2[int, T]

	// Get returns the element at index i.
	Get(i int) (T, error)

	// IsEmpty reports whether there are no elements.
	IsEmpty() bool

	// Values returns every element as a new slice.
	Values() []T
}

var (
	_ Enumerable[int]        = (*Array[int])(nil)
	_ Sized[int]             = (*Array[int])(nil)
	_ sequence.Sequence[int] = (*Array[int])(nil)
)
