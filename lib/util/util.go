// Package util contains helper functions used around the code.
package util

// In returns true if s is found in ss, false otherwise.
func In[T comparable](ss []T, s T) bool {
	for _, v := range ss {
		if s == v {
			return true
		}
	}

	return false
}

// Chunk splits s into consecutive slices of at most size elements, keeping their order. The chunks share s's
// backing array.
func Chunk[T any](s []T, size int) [][]T {
	if size <= 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(s)+size-1)/size)

	for i := 0; i < len(s); i += size {
		end := i + size
		if end > len(s) {
			end = len(s)
		}

		chunks = append(chunks, s[i:end:end])
	}

	return chunks
}

// Unique returns the elements of s without repetitions, in order of first appearance.
func Unique[T comparable](s []T) []T {
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
