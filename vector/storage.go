package vector

import (
	"fmt"
	"math"
	"math/bits"
	"unsafe"
)

// maxAllocBytes bounds the size of a single buffer the vector requests.
// Lengths above it can never be satisfied by make and would abort the
// process instead of failing.
var maxAllocBytes uint64 = func() uint64 {
	if bits.UintSize == 64 {
		return 1 << 47
	}
	return math.MaxInt32
}()

// ceiling returns the largest capacity the vector may allocate: the
// configured maximum, further bounded by what the runtime can allocate for
// items of type T.
func (v *Vector[T]) ceiling() int {
	var zero T
	slots := maxAllocBytes / max(1, uint64(unsafe.Sizeof(zero)))
	if slots < uint64(v.maxCapacity) {
		return int(slots)
	}
	return v.maxCapacity
}

// reserve makes room for extra more items. The capacity is doubled, or
// raised to what is needed when doubling is not enough, and never exceeds
// the ceiling. On failure the vector is unmodified.
func (v *Vector[T]) reserve(extra int) error {
	if extra <= len(v.items)-v.length {
		return nil
	}
	limit := v.ceiling()
	if extra > limit-v.length {
		v.logger.Warn("vector growth refused",
			"length", v.length,
			"extra", extra,
			"capacity", len(v.items),
			"max_capacity", limit,
		)
		return fmt.Errorf("%w: %d more slots after %d, max capacity %d", ErrOutOfMemory, extra, v.length, limit)
	}
	need := v.length + extra
	capacity := len(v.items) * 2
	if capacity < need || capacity < 0 {
		capacity = need
	}
	v.realloc(min(capacity, limit))
	return nil
}

func (v *Vector[T]) realloc(capacity int) {
	items := make([]T, capacity)
	copy(items, v.items[:v.length])
	v.logger.Debug("vector reallocated",
		"from", len(v.items),
		"to", capacity,
		"length", v.length,
	)
	v.items = items
}

// destroyTail removes the last n live items, calling the destructor on each
// from the last to the first.
func (v *Vector[T]) destroyTail(n int) {
	var zero T
	for ; n > 0; n-- {
		v.length--
		item := v.items[v.length]
		v.items[v.length] = zero
		if v.destructor != nil {
			v.destructor(item)
		}
	}
}

// Resize sets the capacity to size (at least 1).
//
// When size is below Len the excess items are removed from the tail and the
// destructor, if set, is called on each of them. That truncation happens
// even when the reallocation itself then fails with [ErrOutOfMemory].
func (v *Vector[T]) Resize(size int) error {
	size = max(1, size)
	if size < v.length {
		v.logger.Debug("vector truncated by resize",
			"length", v.length,
			"size", size,
		)
		v.destroyTail(v.length - size)
	}
	if limit := v.ceiling(); size > limit {
		return fmt.Errorf("%w: resize to %d, max capacity %d", ErrOutOfMemory, size, limit)
	}
	if size != len(v.items) {
		v.realloc(size)
	}
	return nil
}

// DestroyItem calls the destructor on val if one is set, and does nothing
// otherwise. Useful for disposing of an item obtained from [Vector.Pop].
func (v *Vector[T]) DestroyItem(val T) *Vector[T] {
	if v.destructor != nil {
		v.destructor(val)
	}
	return v
}

// Destroy calls the destructor (if set) on every remaining item, from the
// last to the first, releases the backing buffer and returns the context.
//
// The vector must not be used afterwards. Calling Destroy again only
// returns the context.
func (v *Vector[T]) Destroy() any {
	if v.items != nil {
		v.logger.Debug("vector destroyed", "length", v.length, "capacity", len(v.items))
		v.destroyTail(v.length)
		v.items = nil
	}
	v.refs = 0
	return v.context
}
