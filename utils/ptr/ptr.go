package ptr

// PointTo returns a pointer to the given value.
func PointTo[T any](v T) *T {
	return &v
}

// ValueOf dereferences p, returning the zero value when p is nil.
func ValueOf[T any](p *T) T {
	if p == nil {
		return *new(T)
	}

	return *p
}
