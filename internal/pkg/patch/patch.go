// Package patch holds helpers for partial updates where a nil pointer means
// "leave unchanged".
package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Set builds a patch field that overwrites the current value with v.
func Set[T any](v T) *T {
	return &v
}
