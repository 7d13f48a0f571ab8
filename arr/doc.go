// Package arr provides allocation-free primitives over plain Go slices that
// the vector package builds on.
//
// # Indexing
//
// Indices may be negative. A negative index counts from the end of the
// slice, so -1 is the last element and -len the first:
//
//	i, ok := arr.Index(-1, 5)        // → 4, true
//	i, ok  = arr.Index(5, 5)         // → 0, false
//	lo, hi, ok := arr.Section(1, -1, 5) // → 1, 4, true
//
// Point access resolves into [0, len). Section endpoints resolve
// independently into [0, len] and describe the half-open range [lo, hi).
// A resolved section with lo >= hi is empty, not invalid.
//
// # In-place helpers
//
// [Reverse], [Rotate], [OpenGap] and [CloseGap] rearrange a slice without
// allocating:
//
//	s := []int{1, 2, 3, 4, 5}
//	arr.Rotate(s, 2)   // → [4 5 1 2 3]
package arr
