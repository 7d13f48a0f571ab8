package vector

import (
	"fmt"
	"log/slog"

	"github.com/hasbyte1/go-vector/arr"
)

// Comparator is a three-way ordering over two items. It returns a negative
// number when a orders before b, zero when they are equal and a positive
// number otherwise.
type Comparator[T any] func(a, b T) int

// Destructor tears down an item the vector irrevocably removes.
type Destructor[T any] func(item T)

// Vector is a resizable, reference-counted array of T.
//
// A Vector borrows its items: it never releases what an item refers to
// unless a [Destructor] is installed, in which case the destructor is called
// exactly once for every item the vector evicts (Pop excepted, which hands
// the item back to the caller).
//
// # Creating a vector
//
//	v := vector.New[int]()
//	v := vector.NewSized[*Node](64)
//	v := vector.From([]string{"a", "b", "c"})
//
// # Method chaining
//
//	v.Sort().Reverse().Rotate(1)
//
// # Concurrency
//
// A Vector is not safe for concurrent use. The reference count is a plain
// integer; confine a vector to one goroutine or guard it externally.
type Vector[T any] struct {
	items  []T // len(items) is the capacity; items[:length] are live
	length int
	refs   int

	comparator Comparator[T]
	destructor Destructor[T]
	context    any

	maxCapacity int
	logger      *slog.Logger
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an empty Vector with a reference count of 1.
func New[T any](opts ...Option[T]) *Vector[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	return newVector(o)
}

// NewSized creates an empty Vector with the given starting capacity.
// A size below 1 is raised to 1.
func NewSized[T any](size int, opts ...Option[T]) *Vector[T] {
	return New(append(opts[:len(opts):len(opts)], WithCapacity[T](size))...)
}

// From creates a Vector holding a copy of items. The capacity equals
// len(items), or 1 if items is empty.
func From[T any](items []T, opts ...Option[T]) *Vector[T] {
	v := NewSized(len(items), opts...)
	v.length = copy(v.items, items)
	return v
}

func newVector[T any](o options[T]) *Vector[T] {
	capacity := max(1, o.capacity)
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cmp := o.comparator
	if cmp == nil {
		cmp = DefaultComparator[T]
	}
	return &Vector[T]{
		items:       make([]T, capacity),
		refs:        1,
		comparator:  cmp,
		destructor:  o.destructor,
		context:     o.context,
		maxCapacity: max(capacity, o.maxCapacity),
		logger:      logger,
	}
}

// derive creates an empty vector of the given capacity that inherits the
// comparator, context, allocation ceiling and logger of v, but neither its
// destructor nor its reference count.
func (v *Vector[T]) derive(capacity int) *Vector[T] {
	return &Vector[T]{
		items:       make([]T, max(1, capacity)),
		refs:        1,
		comparator:  v.comparator,
		context:     v.context,
		maxCapacity: max(v.maxCapacity, capacity),
		logger:      v.logger,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of live items.
func (v *Vector[T]) Len() int { return v.length }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.items) }

// IsEmpty reports whether the vector holds no items.
func (v *Vector[T]) IsEmpty() bool { return v.length == 0 }

// At returns the item at index. Negative indices count from the end.
// Returns the zero value and false when index is out of range.
func (v *Vector[T]) At(index int) (T, bool) {
	var zero T
	i, ok := arr.Index(index, v.length)
	if !ok {
		return zero, false
	}
	return v.items[i], true
}

// Set replaces the item at index with val. The replaced item is not
// destroyed.
func (v *Vector[T]) Set(index int, val T) error {
	i, ok := arr.Index(index, v.length)
	if !ok {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, v.length)
	}
	v.items[i] = val
	return nil
}

// Swap exchanges the items at index1 and index2.
func (v *Vector[T]) Swap(index1, index2 int) error {
	i1, ok1 := arr.Index(index1, v.length)
	i2, ok2 := arr.Index(index2, v.length)
	if !ok1 || !ok2 {
		return fmt.Errorf("%w: indices %d and %d, length %d", ErrIndexOutOfRange, index1, index2, v.length)
	}
	v.items[i1], v.items[i2] = v.items[i2], v.items[i1]
	return nil
}

// ToSlice returns a copy of the live items as a plain slice.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.length)
	copy(out, v.items[:v.length])
	return out
}

// String implements [fmt.Stringer].
func (v *Vector[T]) String() string {
	return fmt.Sprintf("%v", v.items[:v.length])
}

// ─────────────────────────────────────────────────────────────────────────────
// Capabilities
// ─────────────────────────────────────────────────────────────────────────────

// SetComparator installs cmp. nil restores [DefaultComparator].
func (v *Vector[T]) SetComparator(cmp Comparator[T]) *Vector[T] {
	if cmp == nil {
		cmp = DefaultComparator[T]
	}
	v.comparator = cmp
	return v
}

// Comparator returns the installed comparator.
func (v *Vector[T]) Comparator() Comparator[T] { return v.comparator }

// SetDestructor installs fn. nil disables item teardown.
func (v *Vector[T]) SetDestructor(fn Destructor[T]) *Vector[T] {
	v.destructor = fn
	return v
}

// Destructor returns the installed destructor, or nil.
func (v *Vector[T]) Destructor() Destructor[T] { return v.destructor }

// SetContext stores an opaque user value. The vector never reads it.
func (v *Vector[T]) SetContext(ctx any) *Vector[T] {
	v.context = ctx
	return v
}

// Context returns the stored user value.
func (v *Vector[T]) Context() any { return v.context }

// Data exposes the backing buffer, all Cap() slots of it, for direct bulk
// access. Slots at and beyond Len() are not live. The slice aliases the
// vector until the next reallocation; writes through it bypass index
// checks and the destructor.
func (v *Vector[T]) Data() []T { return v.items }
