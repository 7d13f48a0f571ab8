package vector

// This file contains package-level generic functions for operations that
// produce a Vector[U] or a U from a Vector[T].
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions.

// MapTo applies fn to every item, first to last, and returns a new
// Vector[U] with the same capacity. The source vector is unchanged. The
// result carries the context and allocation ceiling of v but none of its
// capabilities, since they are typed over T.
//
//	names := vector.MapTo(users, func(u *User) string { return u.Name })
func MapTo[T, U any](v *Vector[T], fn func(T) U) *Vector[U] {
	out := NewSized(len(v.items),
		WithContext[U](v.context),
		WithLogger[U](v.logger),
		WithMaxCapacity[U](v.maxCapacity),
	)
	for i, item := range v.items[:v.length] {
		out.items[i] = fn(item)
	}
	out.length = v.length
	return out
}

// Reduce folds the items, first to last, into a single value of type U.
//
//	sum := vector.Reduce(v, func(acc, n int) int { return acc + n }, 0)
func Reduce[T, U any](v *Vector[T], fn func(U, T) U, initial U) U {
	result := initial
	for _, item := range v.items[:v.length] {
		result = fn(result, item)
	}
	return result
}
