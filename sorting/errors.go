package sorting

import "errors"

// Sentinel errors returned by [Manager].
var (
	// ErrDriverNotFound is returned when the requested driver has not been
	// registered.
	ErrDriverNotFound = errors.New("sorting: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied driver name is an empty string.
	ErrEmptyDriverName = errors.New("sorting: driver name must not be empty")

	// ErrNilDriver is returned by [Manager.RegisterDriver] when a nil
	// [Func] is supplied.
	ErrNilDriver = errors.New("sorting: driver must not be nil")
)
