package apiclient

import "context"

// Result is the outcome of FetchWithFallback. When Fallback is true, Data
// holds the caller-supplied value and Err the reason the fetch failed.
type Result[T any] struct {
	Data     T
	Err      error
	Fallback bool
}

// FetchWithFallback performs a single GET and substitutes fallback on any failure.
func FetchWithFallback[T any](ctx context.Context, c *Client, path string, fallback T) Result[T] {
	data, err := Get[T](ctx, c, path)
	if err != nil {
		return Result[T]{Data: fallback, Err: err, Fallback: true}
	}
	return Result[T]{Data: data}
}
