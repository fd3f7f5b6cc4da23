package utils

func Ptr[T any](t T) *T {
	return &t
}

// OrDefault dereferences a pointer, falling back to the zero value.
func OrDefault[T any](t *T) T {
	if t == nil {
		var zero T
		return zero
	}
	return *t
}
