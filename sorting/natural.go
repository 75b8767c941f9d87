package sorting

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/hasbyte1/go-fixed-array/sequence"
)

// Natural compares a and b by the natural ordering of their dynamic type.
//
// Integers, unsigned integers and floats compare numerically (NaN sorts
// before every other float), strings compare bytewise, and false sorts
// before true. Nil sorts before everything else. Values of any other kind,
// or of two different kinds, are compared by their fmt.Sprint text.
func Natural[T any](a, b T) int {
	switch x := any(a).(type) {
	case int:
		if y, ok := any(b).(int); ok {
			return cmp.Compare(x, y)
		}
	case string:
		if y, ok := any(b).(string); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := any(b).(float64); ok {
			return cmp.Compare(x, y)
		}
	}
	return compareValues(any(a), any(b))
}

func compareValues(a, b any) int {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case !va.IsValid() && !vb.IsValid():
		return 0
	case !va.IsValid():
		return -1
	case !vb.IsValid():
		return 1
	}

	if va.Kind() == vb.Kind() {
		switch va.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(va.Int(), vb.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(va.Uint(), vb.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(va.Float(), vb.Float())
		case reflect.String:
			return cmp.Compare(va.String(), vb.String())
		case reflect.Bool:
			switch x, y := va.Bool(), vb.Bool(); {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// SortNatural returns a new store holding the elements of src sorted by
// [Natural].
func SortNatural[T any](src sequence.Sequence[T]) (*sequence.Store[T], error) {
	items, err := sequence.Collect(src)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(items, Natural[T])
	return sequence.Adopt(items), nil
}

// SortOrdered is [SortNatural] for types with a built-in ordering, without
// the reflection cost.
func SortOrdered[T cmp.Ordered](src sequence.Sequence[T]) (*sequence.Store[T], error) {
	items, err := sequence.Collect(src)
	if err != nil {
		return nil, err
	}
	slices.Sort(items)
	return sequence.Adopt(items), nil
}
