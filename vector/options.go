package vector

import (
	"log/slog"
	"math"
)

// DefaultCapacity is the starting capacity used by [New] when no
// [WithCapacity] option is given.
const DefaultCapacity = 7

type options[T any] struct {
	capacity    int
	maxCapacity int
	comparator  Comparator[T]
	destructor  Destructor[T]
	context     any
	logger      *slog.Logger
}

func defaultOptions[T any]() options[T] {
	return options[T]{
		capacity:    DefaultCapacity,
		maxCapacity: math.MaxInt,
	}
}

// Option configures a Vector at construction time.
type Option[T any] func(*options[T])

// WithCapacity sets the starting capacity. Values below 1 are raised to 1.
func WithCapacity[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.capacity = n
	}
}

// WithMaxCapacity caps the number of slots the vector may ever allocate.
//
// Growth or [Vector.Resize] past the cap fails with [ErrOutOfMemory] and
// leaves the vector unmodified, which is the only way an allocation failure
// can be observed without the runtime aborting the process. The cap never
// falls below the starting capacity. A non-positive value removes it.
func WithMaxCapacity[T any](n int) Option[T] {
	return func(o *options[T]) {
		if n <= 0 {
			n = math.MaxInt
		}
		o.maxCapacity = n
	}
}

// WithComparator presets the comparator. nil selects the default comparator.
func WithComparator[T any](cmp Comparator[T]) Option[T] {
	return func(o *options[T]) {
		o.comparator = cmp
	}
}

// WithDestructor presets the destructor.
func WithDestructor[T any](fn Destructor[T]) Option[T] {
	return func(o *options[T]) {
		o.destructor = fn
	}
}

// WithContext attaches an opaque user value.
func WithContext[T any](ctx any) Option[T] {
	return func(o *options[T]) {
		o.context = ctx
	}
}

// WithLogger routes the vector's debug logging (buffer reallocation,
// truncation, teardown) to l. If l is nil logging is discarded.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = l
	}
}
