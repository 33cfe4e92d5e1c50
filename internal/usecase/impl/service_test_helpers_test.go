package impl

// ptr returns a pointer to v, for building sparse inputs in tests.
func ptr[T any](v T) *T {
	return &v
}
