package vector

import "errors"

// Sentinel errors returned by Vector operations.
//
// Use [errors.Is] for comparisons:
//
//	if err := v.Push(x); errors.Is(err, vector.ErrOutOfMemory) {
//	    // vector is unchanged
//	}
var (
	// ErrOutOfMemory is returned when growing or resizing the backing buffer
	// would exceed the configured maximum capacity. The vector is left as
	// documented by the failing operation, normally unmodified.
	ErrOutOfMemory = errors.New("vector: out of memory")

	// ErrIndexOutOfRange is returned when an index or section endpoint does
	// not resolve into the vector.
	ErrIndexOutOfRange = errors.New("vector: index out of range")
)
