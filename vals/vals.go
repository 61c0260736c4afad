// Package vals provides small value-container utilities: compacting and
// deduplicating slices and optional-chaining helpers. They are deliberately
// free functions scoped to this module rather than extensions of shared
// built-in types.
package vals

// Compact returns a new slice with all zero values dropped, preserving the
// order of the remaining elements.
func Compact[T comparable](s []T) []T {
	var zero T
	out := make([]T, 0, len(s))
	for _, v := range s {
		if v != zero {
			out = append(out, v)
		}
	}
	return out
}

// Dedupe returns a new slice with duplicate values removed, keeping the
// first occurrence of each and preserving order.
func Dedupe[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Coalesce returns the first non-zero value among its arguments, or the
// zero value when every argument is zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Ptr returns a pointer to v. It exists for building optional struct fields
// from literals.
func Ptr[T any](v T) *T {
	return &v
}
