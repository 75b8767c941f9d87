package immutable

import (
	"fmt"
	"reflect"
	"sync"
)

// MacroFunc derives a new array from a. A macro is registered for one
// element type and is only visible to arrays of that type, so it can be
// chained like any built-in method:
//
//	immutable.RegisterMacro("evens", func(a *immutable.Array[int], _ ...any) (*immutable.Array[int], error) {
//	    return a.Filter(func(n int) bool { return n%2 == 0 }), nil
//	})
//
//	evens, _ := immutable.New(1, 2, 3, 4).Macro("evens") // [2 4]
type MacroFunc[T any] func(a *Array[T], args ...any) (*Array[T], error)

// macroKey scopes a macro name to an element type: "evens" for int and
// "evens" for string are different macros.
type macroKey struct {
	name string
	elem reflect.Type
}

func (k macroKey) String() string { return fmt.Sprintf("%q for Array[%v]", k.name, k.elem) }

var macroRegistry = struct {
	mu     sync.RWMutex
	macros map[macroKey]any
}{macros: make(map[macroKey]any)}

func keyFor[T any](name string) macroKey {
	return macroKey{name: name, elem: reflect.TypeFor[T]()}
}

// RegisterMacro adds a named macro for arrays of T, replacing any macro of
// the same name for that element type. A nil fn removes it.
func RegisterMacro[T any](name string, fn MacroFunc[T]) {
	k := keyFor[T](name)
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	if fn == nil {
		delete(macroRegistry.macros, k)
		return
	}
	macroRegistry.macros[k] = fn
}

// HasMacro reports whether a macro named name is registered for arrays of T.
func HasMacro[T any](name string) bool {
	_, ok := lookupMacro[T](name)
	return ok
}

// FlushMacros removes every registered macro, for all element types.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	clear(macroRegistry.macros)
}

func lookupMacro[T any](name string) (MacroFunc[T], bool) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[keyFor[T](name)]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return fn.(MacroFunc[T]), true
}

// CallMacro runs the macro named name on a.
//
// Returns an error wrapping [ErrMacroNotFound] if nothing is registered
// under name for T. An error from the macro itself is returned as is. A
// macro that returns a nil array yields an empty one, so the result can
// always be chained.
func CallMacro[T any](name string, a *Array[T], args ...any) (*Array[T], error) {
	fn, ok := lookupMacro[T](name)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrMacroNotFound, keyFor[T](name))
	}
	out, err := fn(a, args...)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return Empty[T](), nil
	}
	return out, nil
}

// Macro runs the macro named name, registered for T, on a.
func (a *Array[T]) Macro(name string, args ...any) (*Array[T], error) {
	return CallMacro(name, a, args...)
}
