package mocks

import (
	"comms/domain/event"
	"context"
	"sync"

	"github.com/samber/lo"
)

// Recorder is an event sink keeping everything it consumes.
type Recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *Recorder) Consume(_ context.Context, e event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *Recorder) Events() []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event.Event(nil), r.events...)
}

// EventsOf returns the recorded events of type T in publication order.
func EventsOf[T event.Event](r *Recorder) []T {
	return lo.FilterMap(r.Events(), func(e event.Event, _ int) (T, bool) {
		evt, ok := e.(T)
		return evt, ok
	})
}

// StepDispatcher queues posted tasks until Drain runs them on the caller's
// goroutine.
type StepDispatcher struct {
	mu    sync.Mutex
	tasks []func()
}

func (d *StepDispatcher) Post(task func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tasks = append(d.tasks, task)
	return true
}

// Drain runs queued tasks, including those posted while draining.
func (d *StepDispatcher) Drain() {
	for {
		d.mu.Lock()
		if len(d.tasks) == 0 {
			d.mu.Unlock()
			return
		}
		task := d.tasks[0]
		d.tasks = d.tasks[1:]
		d.mu.Unlock()
		task()
	}
}
