package vector

import "github.com/hasbyte1/go-vector/arr"

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map replaces every item, first to last, with fn(item).
//
// For a mapping that changes the item type use the package-level [MapTo].
func (v *Vector[T]) Map(fn func(T) T) *Vector[T] {
	for i, item := range v.items[:v.length] {
		v.items[i] = fn(item)
	}
	return v
}

// Filter keeps the items for which fn returns true and removes the rest,
// calling the destructor on each removed item. The predicate is applied from
// first to last and the kept items keep their relative order. O(n).
func (v *Vector[T]) Filter(fn func(T) bool) *Vector[T] {
	kept := 0
	for _, item := range v.items[:v.length] {
		if fn(item) {
			v.items[kept] = item
			kept++
		} else if v.destructor != nil {
			v.destructor(item)
		}
	}
	clear(v.items[kept:v.length])
	v.length = kept
	return v
}

// FilterSplit keeps the items for which fn returns true and moves the
// rejected ones, in their original relative order, to a new vector which is
// returned. Nothing is destroyed. The new vector takes over the comparator,
// context and destructor, since it now owns the rejected items.
func (v *Vector[T]) FilterSplit(fn func(T) bool) *Vector[T] {
	rejected := v.derive(v.length)
	rejected.destructor = v.destructor
	kept := 0
	for _, item := range v.items[:v.length] {
		if fn(item) {
			v.items[kept] = item
			kept++
		} else {
			rejected.items[rejected.length] = item
			rejected.length++
		}
	}
	clear(v.items[kept:v.length])
	v.length = kept
	return rejected
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls fn(item, index) on every item from first to last and stops
// as soon as fn returns false.
func (v *Vector[T]) ForEach(fn func(T, int) bool) *Vector[T] {
	for i := 0; i < v.length; i++ {
		if !fn(v.items[i], i) {
			break
		}
	}
	return v
}

// RForEach is like [Vector.ForEach] but iterates from last to first.
func (v *Vector[T]) RForEach(fn func(T, int) bool) *Vector[T] {
	for i := v.length - 1; i >= 0; i-- {
		if !fn(v.items[i], i) {
			break
		}
	}
	return v
}

// ForSection is like [Vector.ForEach] restricted to [index1, index2).
// Both indices may be negative; a section that does not resolve visits
// nothing.
func (v *Vector[T]) ForSection(fn func(T, int) bool, index1, index2 int) *Vector[T] {
	lo, hi, ok := arr.Section(index1, index2, v.length)
	if !ok {
		return v
	}
	for i := lo; i < hi; i++ {
		if !fn(v.items[i], i) {
			break
		}
	}
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates & aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Any reports whether at least one item satisfies fn, stopping at the first.
func (v *Vector[T]) Any(fn func(T) bool) bool {
	for _, item := range v.items[:v.length] {
		if fn(item) {
			return true
		}
	}
	return false
}

// All reports whether every item satisfies fn, stopping at the first that
// does not. An empty vector satisfies any predicate.
func (v *Vector[T]) All(fn func(T) bool) bool {
	for _, item := range v.items[:v.length] {
		if !fn(item) {
			return false
		}
	}
	return true
}

// Count returns the number of items equal to val under the comparator.
func (v *Vector[T]) Count(val T) int {
	n := 0
	for _, item := range v.items[:v.length] {
		if v.comparator(val, item) == 0 {
			n++
		}
	}
	return n
}

// Equal reports whether v and other have the same length and every pair of
// items at the same position compares equal under v's comparator.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v.length != other.length {
		return false
	}
	for i, item := range v.items[:v.length] {
		if v.comparator(item, other.items[i]) != 0 {
			return false
		}
	}
	return true
}

// Max returns the greatest item under the comparator, the first one found
// when several compare equal. Returns the zero value and false if the
// vector is empty.
func (v *Vector[T]) Max() (T, bool) {
	var zero T
	if v.length == 0 {
		return zero, false
	}
	best := v.items[0]
	for _, item := range v.items[1:v.length] {
		if v.comparator(item, best) > 0 {
			best = item
		}
	}
	return best, true
}

// Min returns the least item under the comparator, the first one found
// when several compare equal. Returns the zero value and false if the
// vector is empty.
func (v *Vector[T]) Min() (T, bool) {
	var zero T
	if v.length == 0 {
		return zero, false
	}
	best := v.items[0]
	for _, item := range v.items[1:v.length] {
		if v.comparator(item, best) < 0 {
			best = item
		}
	}
	return best, true
}
