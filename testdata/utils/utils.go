package utils

// Ptr returns a pointer to v; test fixture helper.
func Ptr[T any](v T) *T {
	return &v
}
