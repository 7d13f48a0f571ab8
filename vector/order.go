package vector

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/hasbyte1/go-vector/arr"
)

// DefaultComparator is the comparator a vector uses until another is
// installed.
//
// Numbers, strings and booleans compare by value, and arrays and structs
// compare element by element. Pointers, slices, maps, channels and funcs
// compare by address: the resulting order is stable within one run of the
// program but differs between runs, so sorting and binary search over such
// items are only meaningful for identity lookups. Install a [Comparator]
// whenever the order matters.
func DefaultComparator[T any](a, b T) int {
	return compareValues(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
}

func compareValues(x, y reflect.Value) int {
	switch x.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(x.Int(), y.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(x.Uint(), y.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(x.Float(), y.Float())
	case reflect.Complex64, reflect.Complex128:
		cx, cy := x.Complex(), y.Complex()
		if c := cmp.Compare(real(cx), real(cy)); c != 0 {
			return c
		}
		return cmp.Compare(imag(cx), imag(cy))
	case reflect.String:
		return cmp.Compare(x.String(), y.String())
	case reflect.Bool:
		return boolCompare(x.Bool(), y.Bool())
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		return cmp.Compare(x.Pointer(), y.Pointer())
	case reflect.Interface:
		if x.IsNil() || y.IsNil() {
			return boolCompare(!x.IsNil(), !y.IsNil())
		}
		ex, ey := x.Elem(), y.Elem()
		if ex.Type() != ey.Type() {
			return cmp.Compare(ex.Type().String(), ey.Type().String())
		}
		return compareValues(ex, ey)
	case reflect.Array:
		for i := 0; i < x.Len(); i++ {
			if c := compareValues(x.Index(i), y.Index(i)); c != 0 {
				return c
			}
		}
	case reflect.Struct:
		for i := 0; i < x.NumField(); i++ {
			if c := compareValues(x.Field(i), y.Field(i)); c != 0 {
				return c
			}
		}
	}
	return 0
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// IsSorted reports whether the items are in non-decreasing order under the
// comparator, stopping at the first violation.
func (v *Vector[T]) IsSorted() bool {
	for i := 1; i < v.length; i++ {
		if v.comparator(v.items[i-1], v.items[i]) > 0 {
			return false
		}
	}
	return true
}

// Sort orders all items under the comparator. The sort is not stable.
func (v *Vector[T]) Sort() *Vector[T] {
	slices.SortFunc(v.items[:v.length], v.comparator)
	return v
}

// SortSection orders the items in [index1, index2) under the comparator.
// Both indices may be negative. An empty section is a no-op.
func (v *Vector[T]) SortSection(index1, index2 int) error {
	lo, hi, ok := arr.Section(index1, index2, v.length)
	if !ok {
		return fmt.Errorf("%w: section [%d, %d), length %d", ErrIndexOutOfRange, index1, index2, v.length)
	}
	slices.SortFunc(v.items[lo:hi], v.comparator)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// BinarySearch returns the index of an item equal to val, or -1.
//
// The vector must already be sorted under the same comparator; this is not
// checked. When several items equal val any one of them may be reported.
func (v *Vector[T]) BinarySearch(val T) int {
	i, found := slices.BinarySearchFunc(v.items[:v.length], val, v.comparator)
	if !found {
		return -1
	}
	return i
}

// LinearSearch returns the index of the first item equal to val, or -1.
func (v *Vector[T]) LinearSearch(val T) int {
	return v.search(val, 0, v.length)
}

// LinearSearchSection returns the index of the first item in
// [index1, index2) equal to val, or -1. Both indices may be negative; a
// section that does not resolve finds nothing.
func (v *Vector[T]) LinearSearchSection(val T, index1, index2 int) int {
	lo, hi, ok := arr.Section(index1, index2, v.length)
	if !ok {
		return -1
	}
	return v.search(val, lo, hi)
}

func (v *Vector[T]) search(val T, lo, hi int) int {
	for i := lo; i < hi; i++ {
		if v.comparator(val, v.items[i]) == 0 {
			return i
		}
	}
	return -1
}

// Contains reports whether an item equal to val is present, using binary
// search when sorted is true and linear search otherwise.
func (v *Vector[T]) Contains(val T, sorted bool) bool {
	if sorted {
		return v.BinarySearch(val) >= 0
	}
	return v.LinearSearch(val) >= 0
}
