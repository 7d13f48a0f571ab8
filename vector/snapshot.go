package vector

// Snapshot is a point-in-time cursor over a vector's live items.
//
// A snapshot does not follow the vector: pushes, removals and reallocations
// made after it was taken are not reflected, and once the vector reallocates
// the snapshot keeps reading the old buffer. It is the fastest way to walk a
// vector in a tight loop; prefer [Vector.ForEach] elsewhere.
//
//	for s := v.Snapshot(); s.I < s.Len; s.I++ {
//	    use(s.Items[s.I])
//	}
type Snapshot[T any] struct {
	I     int // cursor, starts at 0
	Len   int // length of the vector when the snapshot was taken
	Items []T // live items when the snapshot was taken
}

// Snapshot captures the vector's current length and buffer.
func (v *Vector[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{
		Len:   v.length,
		Items: v.items[:v.length:v.length],
	}
}

// Next returns the item under the cursor and advances it.
// Returns the zero value and false once the cursor passes Len.
func (s *Snapshot[T]) Next() (T, bool) {
	var zero T
	if s.I < 0 || s.I >= s.Len {
		return zero, false
	}
	item := s.Items[s.I]
	s.I++
	return item, true
}

// Remaining returns the number of items left under the cursor.
func (s *Snapshot[T]) Remaining() int { return max(0, s.Len-s.I) }

// Reset rewinds the cursor to the first item.
func (s *Snapshot[T]) Reset() { s.I = 0 }

// Stale reports whether v has changed length or reallocated its buffer
// since s was taken. In-place writes (Set, Sort, Map, ...) are not detected;
// use [Vector.Digest] for content changes.
func (s *Snapshot[T]) Stale(v *Vector[T]) bool {
	if v.length != s.Len {
		return true
	}
	if s.Len == 0 {
		return false
	}
	return &v.items[0] != &s.Items[0]
}
