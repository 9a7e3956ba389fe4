package runtime

import (
	"comms/contract"
	"sync"
)

type subscription struct {
	id   uint64
	sink contract.EventSink
}

// Registry keeps the observers of one entity in subscription order.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	nextID uint64
	sinks  []subscription
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Subscribe registers a sink and returns the function removing it.
// Calling the returned function more than once is harmless.
func (r *Registry) Subscribe(sink contract.EventSink) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.sinks = append(r.sinks, subscription{id: id, sink: sink})
	return func() { r.unsubscribe(id) }
}

func (r *Registry) unsubscribe(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.sinks {
		if s.id == id {
			r.sinks = append(r.sinks[:i], r.sinks[i+1:]...)
			return
		}
	}
}

// Sinks returns the sinks subscribed at call time.
func (r *Registry) Sinks() []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.sinks) == 0 {
		return nil
	}
	res := make([]contract.EventSink, 0, len(r.sinks))
	for _, s := range r.sinks {
		res = append(res, s.sink)
	}
	return res
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sinks)
}
