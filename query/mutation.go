package query

import (
	"context"
	"sync"

	"github.com/ucsb-cs156/frontiers-tui/frontiers"
	"github.com/ucsb-cs156/frontiers-tui/logging"
)

// Doer executes one API request. *frontiers.Client satisfies this.
type Doer interface {
	Do(ctx context.Context, r frontiers.Request) ([]byte, error)
}

// Mutation performs a write built from a typed argument, invalidating the
// listed cache keys on success so dependent reads refetch. Invalidation
// happens before OnSuccess runs, so a refetch triggered from OnSuccess is
// guaranteed to see post-mutation server state. Nothing is invalidated on
// error.
type Mutation[A any] struct {
	Client         Doer
	Store          *Store
	Build          func(A) frontiers.Request
	InvalidateKeys []Key
	OnSuccess      func(body []byte)
	OnError        func(err error)

	mu        sync.Mutex
	pending   bool
	succeeded bool
	hasArg    bool
	lastArg   A
	lastErr   error
}

// Mutate issues the write for arg. The returned error mirrors what OnError
// received; callers that fully handle failures in OnError may ignore it.
func (m *Mutation[A]) Mutate(ctx context.Context, arg A) error {
	m.mu.Lock()
	m.pending = true
	m.succeeded = false
	m.hasArg = true
	m.lastArg = arg
	m.lastErr = nil
	m.mu.Unlock()

	req := m.Build(arg)
	body, err := m.Client.Do(ctx, req)

	m.mu.Lock()
	m.pending = false
	if err != nil {
		m.lastErr = err
		m.mu.Unlock()
		logging.Warn("Mutation failed", "method", req.Method, "path", req.Path, "error", err.Error())
		if m.OnError != nil {
			m.OnError(err)
		}
		return err
	}
	m.succeeded = true
	m.mu.Unlock()

	if m.Store != nil && len(m.InvalidateKeys) > 0 {
		m.Store.Invalidate(m.InvalidateKeys...)
	}
	if m.OnSuccess != nil {
		m.OnSuccess(body)
	}
	return nil
}

// Pending reports whether a call is in flight.
func (m *Mutation[A]) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending
}

// Succeeded reports whether the most recent call completed successfully.
func (m *Mutation[A]) Succeeded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.succeeded
}

// LastArg returns the argument of the most recent call, and whether one exists.
// Pages use it to show a spinner on the specific row being acted on.
func (m *Mutation[A]) LastArg() (A, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastArg, m.hasArg
}

// LastErr returns the error from the most recent call, if any.
func (m *Mutation[A]) LastErr() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}
