package vector

// Retain increments the reference count and returns v.
//
// Reference counting governs the lifetime of the vector itself, not of its
// items. It is not synchronized.
func (v *Vector[T]) Retain() *Vector[T] {
	v.refs++
	return v
}

// Release decrements the reference count. When the count reaches zero the
// vector is torn down exactly as by [Vector.Destroy] and Release reports
// true. Releasing a vector whose count is already zero does nothing.
func (v *Vector[T]) Release() bool {
	if v.refs <= 0 {
		return false
	}
	v.refs--
	if v.refs > 0 {
		return false
	}
	v.Destroy()
	return true
}

// Refs returns the current reference count.
func (v *Vector[T]) Refs() int { return v.refs }
