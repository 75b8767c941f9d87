package sorting

import (
	"fmt"
	"sync"

	"github.com/hasbyte1/go-fixed-array/sequence"
)

// DriverName identifies a registered sort strategy.
type DriverName string

// Built-in driver names.
const (
	DriverMerge DriverName = "merge"
	DriverQuick DriverName = "quick"
	DriverHeap  DriverName = "heap"
)

// Func is the signature every sort strategy exposes: copy src, sort the
// copy ascending under c, return it.
type Func[T any] func(src sequence.Sequence[T], c Comparator[T]) (*sequence.Store[T], error)

// Manager is a thread-safe registry of named sort strategies with a default.
//
// Register strategies with [Manager.RegisterDriver], pick the default with
// [Manager.SetDefaultDriver], then route every sort through [Manager.Sort].
//
// All Manager methods are safe for concurrent use by multiple goroutines.
type Manager[T any] struct {
	mu      sync.RWMutex
	drivers map[DriverName]Func[T]
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// Drivers must be registered before any sort is routed through it.
func NewManager[T any](defaultDriver DriverName) *Manager[T] {
	return &Manager[T]{
		drivers: make(map[DriverName]Func[T]),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with [Merge], [Quick] and [HeapSort]
// registered under their built-in names. The default driver is
// [DriverMerge].
func NewDefaultManager[T any]() *Manager[T] {
	m := NewManager[T](DriverMerge)
	_ = m.RegisterDriver(DriverMerge, Merge[T])
	_ = m.RegisterDriver(DriverQuick, Quick[T])
	_ = m.RegisterDriver(DriverHeap, func(src sequence.Sequence[T], c Comparator[T]) (*sequence.Store[T], error) {
		return HeapSort[T](src, c)
	})
	return m
}

// RegisterDriver adds or replaces a named strategy.
func (m *Manager[T]) RegisterDriver(name DriverName, fn Func[T]) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if fn == nil {
		return ErrNilDriver
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = fn
	return nil
}

// Driver returns the strategy registered under name, or
// [ErrDriverNotFound].
func (m *Manager[T]) Driver(name DriverName) (Func[T], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return fn, nil
}

// SetDefaultDriver changes the driver used by [Manager.Sort]. The named
// driver must already be registered.
func (m *Manager[T]) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the current default driver.
func (m *Manager[T]) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager[T]) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Sort sorts src with the default driver.
func (m *Manager[T]) Sort(src sequence.Sequence[T], c Comparator[T]) (*sequence.Store[T], error) {
	m.mu.RLock()
	def := m.def
	m.mu.RUnlock()
	return m.SortWith(def, src, c)
}

// SortWith sorts src with the named driver.
func (m *Manager[T]) SortWith(name DriverName, src sequence.Sequence[T], c Comparator[T]) (*sequence.Store[T], error) {
	fn, err := m.Driver(name)
	if err != nil {
		return nil, err
	}
	return fn(src, c)
}
