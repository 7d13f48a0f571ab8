package arr

// ─────────────────────────────────────────────────────────────────────────────
// Index resolution
// ─────────────────────────────────────────────────────────────────────────────

// Normalize maps a possibly negative index onto [0, …) by adding length to
// negative values. The result is not bounds-checked.
func Normalize(index, length int) int {
	if index < 0 {
		return index + length
	}
	return index
}

// Index resolves index for point access.
// Returns the resolved index and false when it falls outside [0, length).
func Index(index, length int) (int, bool) {
	i := Normalize(index, length)
	if i < 0 || i >= length {
		return 0, false
	}
	return i, true
}

// Bound resolves index as a section endpoint.
// Returns the resolved index and false when it falls outside [0, length].
func Bound(index, length int) (int, bool) {
	i := Normalize(index, length)
	if i < 0 || i > length {
		return 0, false
	}
	return i, true
}

// Section resolves both endpoints of the half-open range [i1, i2).
// Returns false when either endpoint is out of range. When the resolved
// start is not before the end the section is empty and lo == hi.
func Section(i1, i2, length int) (lo, hi int, ok bool) {
	lo, ok1 := Bound(i1, length)
	hi, ok2 := Bound(i2, length)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	if lo > hi {
		hi = lo
	}
	return lo, hi, true
}

// Clamp resolves both endpoints like [Section] but clamps them into
// [0, length] instead of failing.
func Clamp(i1, i2, length int) (lo, hi int) {
	lo = min(max(Normalize(i1, length), 0), length)
	hi = min(max(Normalize(i2, length), 0), length)
	if lo > hi {
		hi = lo
	}
	return lo, hi
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place rearrangement
// ─────────────────────────────────────────────────────────────────────────────

// Reverse reverses items in place.
func Reverse[T any](items []T) {
	for l, r := 0, len(items)-1; l < r; l, r = l+1, r-1 {
		items[l], items[r] = items[r], items[l]
	}
}

// Rotate rotates items k places to the right in place. A negative k rotates
// to the left. k is taken modulo len(items), so Rotate(s, len(s)) is a no-op.
func Rotate[T any](items []T, k int) {
	n := len(items)
	if n < 2 {
		return
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return
	}
	Reverse(items)
	Reverse(items[:k])
	Reverse(items[k:])
}

// OpenGap moves items[at:length] n places to the right and zeroes the n
// slots starting at at. items must have room for length+n elements.
func OpenGap[T any](items []T, at, length, n int) {
	copy(items[at+n:length+n], items[at:length])
	clear(items[at : at+n])
}

// CloseGap moves items[at+n:length] n places to the left and zeroes the n
// slots vacated at the tail.
func CloseGap[T any](items []T, at, length, n int) {
	copy(items[at:], items[at+n:length])
	clear(items[length-n : length])
}
