package vector

import (
	"fmt"

	"github.com/hasbyte1/go-vector/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Stack operations
// ─────────────────────────────────────────────────────────────────────────────

// Push appends val, growing the buffer if needed.
// On [ErrOutOfMemory] val is not pushed.
func (v *Vector[T]) Push(val T) error {
	if err := v.reserve(1); err != nil {
		return err
	}
	v.items[v.length] = val
	v.length++
	return nil
}

// Pop removes the last item and returns it to the caller; the destructor is
// not called. Returns the zero value and false if the vector is empty.
func (v *Vector[T]) Pop() (T, bool) {
	var zero T
	if v.length == 0 {
		return zero, false
	}
	v.length--
	item := v.items[v.length]
	v.items[v.length] = zero
	return item, true
}

// Top returns the last item without removing it.
// Returns the zero value and false if the vector is empty.
func (v *Vector[T]) Top() (T, bool) {
	var zero T
	if v.length == 0 {
		return zero, false
	}
	return v.items[v.length-1], true
}

// ─────────────────────────────────────────────────────────────────────────────
// Insertion & removal
// ─────────────────────────────────────────────────────────────────────────────

// Shift opens or closes a gap at the anchor index.
//
// For n > 0 every item at or after the anchor moves n places to the right
// and the n freed slots are filled with the zero value; the buffer grows as
// needed. The anchor may equal Len, which appends n zero values.
//
// For n < 0 the |n| items starting at the anchor are destroyed in order and
// the items after them move left to close the gap. |n| is clamped to the
// number of items from the anchor to the end.
//
// Returns [ErrIndexOutOfRange] when the anchor does not resolve into
// [0, Len], and [ErrOutOfMemory] when growing fails. The vector is
// unmodified in both cases.
func (v *Vector[T]) Shift(index, n int) error {
	at, ok := arr.Bound(index, v.length)
	if !ok {
		return fmt.Errorf("%w: anchor %d, length %d", ErrIndexOutOfRange, index, v.length)
	}
	switch {
	case n > 0:
		return v.openGap(at, n)
	case n < 0:
		k := v.length - at
		if n > -k {
			k = -n
		}
		v.closeGap(at, k)
	}
	return nil
}

func (v *Vector[T]) openGap(at, n int) error {
	if err := v.reserve(n); err != nil {
		return err
	}
	arr.OpenGap(v.items, at, v.length, n)
	v.length += n
	return nil
}

func (v *Vector[T]) closeGap(at, n int) {
	if n <= 0 {
		return
	}
	if v.destructor != nil {
		for _, item := range v.items[at : at+n] {
			v.destructor(item)
		}
	}
	arr.CloseGap(v.items, at, v.length, n)
	v.length -= n
}

// Discard removes the last min(n, Len) items, calling the destructor on
// each from the last to the first. A non-positive n does nothing.
func (v *Vector[T]) Discard(n int) *Vector[T] {
	v.destroyTail(min(max(0, n), v.length))
	return v
}

// Clear removes every item, calling the destructor on each. The capacity is
// kept.
func (v *Vector[T]) Clear() *Vector[T] {
	v.destroyTail(v.length)
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Rearrangement
// ─────────────────────────────────────────────────────────────────────────────

// Reverse reverses all items in place.
func (v *Vector[T]) Reverse() *Vector[T] {
	arr.Reverse(v.items[:v.length])
	return v
}

// ReverseSection reverses the items in [index1, index2) in place.
// Both indices may be negative. An empty section is a no-op.
func (v *Vector[T]) ReverseSection(index1, index2 int) error {
	lo, hi, ok := arr.Section(index1, index2, v.length)
	if !ok {
		return fmt.Errorf("%w: section [%d, %d), length %d", ErrIndexOutOfRange, index1, index2, v.length)
	}
	arr.Reverse(v.items[lo:hi])
	return nil
}

// Rotate rotates the items k places to the right; a negative k rotates to
// the left. O(n), in place.
func (v *Vector[T]) Rotate(k int) *Vector[T] {
	arr.Rotate(v.items[:v.length], k)
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Copies
// ─────────────────────────────────────────────────────────────────────────────

// Copy returns a shallow copy with the same items and capacity. The
// comparator and context are copied; the destructor and reference count are
// not, so tearing down both vectors never destroys an item twice.
func (v *Vector[T]) Copy() *Vector[T] {
	out := v.derive(len(v.items))
	out.length = copy(out.items, v.items[:v.length])
	return out
}

// Slice returns a shallow copy of the items in [index1, index2). Both
// indices may be negative and are clamped into [0, Len]. The result has a
// capacity equal to the number of items copied, or 1 if none are.
//
//	vector.From([]int{1, 2, 3, 4, 5}).Slice(1, -1) // → [2 3 4]
func (v *Vector[T]) Slice(index1, index2 int) *Vector[T] {
	lo, hi := arr.Clamp(index1, index2, v.length)
	out := v.derive(hi - lo)
	out.length = copy(out.items, v.items[lo:hi])
	return out
}

// RSlice is like [Vector.Slice] but the copied items are in reverse order.
func (v *Vector[T]) RSlice(index1, index2 int) *Vector[T] {
	out := v.Slice(index1, index2)
	arr.Reverse(out.items[:out.length])
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Joining
// ─────────────────────────────────────────────────────────────────────────────

// Extend moves every item of other to the end of v, leaving other empty.
// Nothing is destroyed. Extending a vector with itself is a no-op.
// On [ErrOutOfMemory] neither vector is modified.
func (v *Vector[T]) Extend(other *Vector[T]) error {
	if v == other {
		return nil
	}
	if err := v.reserve(other.length); err != nil {
		return err
	}
	copy(v.items[v.length:], other.items[:other.length])
	v.length += other.length
	clear(other.items[:other.length])
	other.length = 0
	return nil
}

// Concat copies every item of other to the end of v; other is unchanged.
// v and other may be the same vector, in which case the original items are
// appended exactly once. On [ErrOutOfMemory] v is not modified.
func (v *Vector[T]) Concat(other *Vector[T]) error {
	n := other.length
	if err := v.reserve(n); err != nil {
		return err
	}
	copy(v.items[v.length:], other.items[:n])
	v.length += n
	return nil
}
