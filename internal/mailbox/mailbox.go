// Package mailbox provides a single-slot, latest-value-wins channel used for
// every handoff between the pipeline tasks.
//
// A Mailbox holds at most one pending value. Writers never block: a new
// value replaces any value that has not been consumed yet. Readers either
// block until a value is present (Wait) or poll (HasValue, TryTake).
package mailbox

import (
	"context"
	"sync"
)

// Stats reports traffic through a mailbox.
type Stats struct {
	Writes  uint64 // Values written
	Takes   uint64 // Values consumed by Wait or TryTake
	Dropped uint64 // Values overwritten before anyone consumed them
}

// Mailbox is a single-slot signal carrying values of type T.
// The zero value is not usable; create one with New.
// All methods are safe for concurrent use.
type Mailbox[T any] struct {
	mu    sync.Mutex
	value T
	has   bool
	ready chan struct{}
	stats Stats
}

// New creates an empty mailbox.
func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{
		ready: make(chan struct{}, 1),
	}
}

// Write stores v, discarding any unconsumed value, and wakes a blocked waiter.
func (m *Mailbox[T]) Write(v T) {
	m.mu.Lock()
	if m.has {
		m.stats.Dropped++
	}
	m.value = v
	m.has = true
	m.stats.Writes++
	m.mu.Unlock()

	// Wake at most one waiter; a pending token already does the job.
	select {
	case m.ready <- struct{}{}:
	default:
	}
}

// Wait blocks until a value is present, then takes it and clears the slot.
// It returns ctx.Err() if ctx is cancelled first.
func (m *Mailbox[T]) Wait(ctx context.Context) (T, error) {
	for {
		if v, ok := m.TryTake(); ok {
			return v, nil
		}

		select {
		case <-m.ready:
			// Re-check the slot: the token may belong to a value that a
			// concurrent TryTake already consumed.
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

// HasValue reports whether a value is pending without consuming it.
func (m *Mailbox[T]) HasValue() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.has
}

// TryTake consumes the pending value if there is one.
func (m *Mailbox[T]) TryTake() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero T
	if !m.has {
		return zero, false
	}
	v := m.value
	m.value = zero
	m.has = false
	m.stats.Takes++
	return v, true
}

// Stats returns a snapshot of the traffic counters.
func (m *Mailbox[T]) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}
