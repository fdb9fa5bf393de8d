package listing

import "strings"

// Field extracts one searchable string from a record.
type Field[T any] func(T) string

// Filter returns the records whose designated fields contain query,
// compared case-insensitively. Order is preserved and an empty query
// returns every record.
func Filter[T any](items []T, query string, fields ...Field[T]) []T {
	if query == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	q := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(it)), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Where keeps the records for which keep returns true.
func Where[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
