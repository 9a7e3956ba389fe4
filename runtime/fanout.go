package runtime

import (
	"comms/contract"
	"comms/domain/event"
	"context"
	"fmt"
	"log/slog"
	"time"
)

const DefaultSinkTimeout = 2 * time.Second

// Fanout broadcasts the notifications of one entity to its current observers.
//
// Delivery is synchronous and in subscription order, so an observer sees the
// events of one entity in the order they were published. Events are never
// buffered for observers that subscribe later. A failing or slow sink is
// logged and does not stop delivery to the others.
type Fanout struct {
	log         *slog.Logger
	registry    *Registry
	sinkTimeout time.Duration
}

func NewFanout(log *slog.Logger, sinkTimeout time.Duration) *Fanout {
	if sinkTimeout <= 0 {
		sinkTimeout = DefaultSinkTimeout
	}
	return &Fanout{log: log, registry: NewRegistry(), sinkTimeout: sinkTimeout}
}

func (f *Fanout) Subscribe(sink contract.EventSink) func() {
	return f.registry.Subscribe(sink)
}

func (f *Fanout) Observers() int {
	return f.registry.Len()
}

// Publish must not be called while holding the publisher's lock: sinks may
// call back into the entity.
func (f *Fanout) Publish(e event.Event) {
	for _, sink := range f.registry.Sinks() {
		f.consume(sink, e)
	}
}

func (f *Fanout) consume(sink contract.EventSink, e event.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), f.sinkTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			f.log.Error("Sink panicked", "event", fmt.Sprintf("%T", e), "panic", fmt.Sprint(r))
		}
	}()
	if err := sink.Consume(ctx, e); err != nil {
		f.log.Warn("Sink failed to consume event", "event", fmt.Sprintf("%T", e), "error", err)
	}
}
