// Package vector provides a generic, reference-counted, resizable array with
// functional combinators, structural operations and ordering operations
// layered on a single growable buffer.
//
// # Overview
//
// The central type is [Vector][T]. Unlike an immutable collection, a Vector
// is mutated in place and most mutators return the vector for chaining:
//
//	v := vector.From([]int{5, 3, 1, 4, 2})
//	v.Sort().Rotate(1)                // → [5 1 2 3 4]
//	i := v.LinearSearch(3)            // → 3
//	x, ok := v.At(-1)                 // → 4, true
//
// # Indexing
//
// Every index argument may be negative: -1 is the last item, -Len() the
// first. Operations over a section take two indices describing the
// half-open range [index1, index2); a section whose start is not before its
// end is empty and the operation does nothing.
//
// # Capabilities
//
// A vector carries three user-supplied capabilities:
//
//   - a [Comparator] used by sort, search, count, compare, max and min
//     (see [DefaultComparator] for the fallback and its pitfalls);
//   - an optional [Destructor] called on items the vector irrevocably
//     removes (Discard, Clear, Filter, Shift with a negative count,
//     Resize below Len, Destroy and the final Release);
//   - an opaque context value the vector never interprets.
//
// # Ownership
//
// Items are borrowed. Without a destructor the vector never releases what
// an item refers to. Copies made by [Vector.Copy], [Vector.Slice] and
// [Vector.RSlice] share items with their source but never inherit the
// destructor, so an item is destroyed at most once.
//
// The vector itself is reference counted through [Vector.Retain] and
// [Vector.Release]. The count is a plain integer.
//
// # Errors
//
// Growth is the only operation that can fail for lack of room; it reports
// [ErrOutOfMemory] once a [WithMaxCapacity] ceiling would be exceeded. Bad
// indices report [ErrIndexOutOfRange]. Reads of a missing item use the
// comma-ok form and never a sentinel value.
//
// # Concurrency
//
// Nothing in this package is synchronized. A vector must be confined to one
// goroutine or guarded by the caller; reference counting alone does not
// make shared use safe.
package vector
