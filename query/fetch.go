package query

import (
	"context"
	"time"

	"github.com/ucsb-cs156/frontiers-tui/logging"
)

// Status reports the outcome of a Fetch.
type Status int

const (
	StatusPending Status = iota
	StatusSuccess
	StatusError
)

// Result carries the fetched or placeholder data plus its status. Callers
// render Data unconditionally; it is never nil-valued on error, the
// placeholder stands in instead.
type Result[T any] struct {
	Data   T
	Status Status
	Err    error
}

// Option adjusts a single Fetch call.
type Option func(*fetchOptions)

type fetchOptions struct {
	enabled   bool
	staleTime time.Duration
}

// WithEnabled gates the fetch; a disabled fetch returns the placeholder as
// pending without issuing a request.
func WithEnabled(enabled bool) Option {
	return func(o *fetchOptions) { o.enabled = enabled }
}

// WithStaleTime caps how long a cached value is served without refetching.
func WithStaleTime(d time.Duration) Option {
	return func(o *fetchOptions) { o.staleTime = d }
}

// Fetch returns the cached value for key if fresh, otherwise calls fn and
// caches the result. On failure the placeholder is returned and the failure
// is logged; errors never propagate past this boundary unexamined.
func Fetch[T any](ctx context.Context, store *Store, key Key, placeholder T, fn func(context.Context) (T, error), opts ...Option) Result[T] {
	o := fetchOptions{enabled: true}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.enabled {
		return Result[T]{Data: placeholder, Status: StatusPending}
	}

	if cached, ok := store.get(key, o.staleTime); ok {
		if data, ok := cached.(T); ok {
			return Result[T]{Data: data, Status: StatusSuccess}
		}
		// Type changed under the same key; treat as a miss
		logging.Warn("Query cache type mismatch", "key", key.String())
	}

	data, err := fn(ctx)
	if err != nil {
		logging.Error("Query fetch failed", "key", key.String(), "error", err.Error())
		return Result[T]{Data: placeholder, Status: StatusError, Err: err}
	}

	store.put(key, data)
	return Result[T]{Data: data, Status: StatusSuccess}
}
