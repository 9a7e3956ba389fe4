// Package loopback simulates both backend families in memory. The protocol
// side keeps per-address channels with a pending queue; the world side keeps
// a connected flag and records what is sent. Remote activity is injected by
// the caller, and every stage can be made to fail.
//
// Callbacks run synchronously on the caller's goroutine and never under a
// loopback lock.
package loopback

import (
	"sync"

	"github.com/samber/lo"
)

type entry[T any] struct {
	id       int
	observer T
}

// observers is an ordered, concurrency-safe list of subscribers.
type observers[T any] struct {
	mu      sync.Mutex
	next    int
	entries []entry[T]
}

func (o *observers[T]) add(observer T) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.next++
	id := o.next
	o.entries = append(o.entries, entry[T]{id: id, observer: observer})
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		o.entries = lo.Reject(o.entries, func(e entry[T], _ int) bool { return e.id == id })
	}
}

func (o *observers[T]) snapshot() []T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return lo.Map(o.entries, func(e entry[T], _ int) T { return e.observer })
}

func (o *observers[T]) len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.entries)
}
