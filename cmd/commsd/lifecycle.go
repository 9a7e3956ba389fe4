package main

import (
	"comms/domain/event"
	"comms/errors"
	"context"
	"fmt"
)

// lifecycle buffers the state changes run waits on while bringing the
// graph up. Later events are dropped once the buffer is full.
type lifecycle struct {
	events chan event.Event
}

func newLifecycle() *lifecycle {
	return &lifecycle{events: make(chan event.Event, 256)}
}

func (l *lifecycle) Consume(_ context.Context, e event.Event) error {
	switch e.(type) {
	case event.ProviderReady, event.ProviderFailed,
		event.ConnectionReady, event.ConnectionFailed, event.ConnectionClosed,
		event.SessionReady, event.SessionFailed, event.SessionClosed:
		select {
		case l.events <- e:
		default:
		}
	}
	return nil
}

func (l *lifecycle) providerReady(ctx context.Context) error {
	return l.await(ctx, func(e event.Event) (bool, error) {
		switch e := e.(type) {
		case event.ProviderReady:
			return true, nil
		case event.ProviderFailed:
			return true, fmt.Errorf("provider %s failed: %w", e.Provider, e.Err)
		}
		return false, nil
	})
}

func (l *lifecycle) connectionReady(ctx context.Context, id string) error {
	return l.await(ctx, func(e event.Event) (bool, error) {
		switch e := e.(type) {
		case event.ConnectionReady:
			return e.ConnectionID == id, nil
		case event.ConnectionFailed:
			if e.ConnectionID == id {
				return true, fmt.Errorf("connection failed: %w", e.Err)
			}
		case event.ConnectionClosed:
			if e.ConnectionID == id {
				return true, fmt.Errorf("connection closed: %w", errors.ErrInvalidated)
			}
		}
		return false, nil
	})
}

func (l *lifecycle) sessionReady(ctx context.Context, id string) error {
	return l.await(ctx, func(e event.Event) (bool, error) {
		switch e := e.(type) {
		case event.SessionReady:
			return e.SessionID == id, nil
		case event.SessionFailed:
			if e.SessionID == id {
				return true, fmt.Errorf("session failed: %w", e.Err)
			}
		case event.SessionClosed:
			if e.SessionID == id {
				return true, fmt.Errorf("session closed: %w", errors.ErrInvalidated)
			}
		}
		return false, nil
	})
}

func (l *lifecycle) await(ctx context.Context, match func(event.Event) (bool, error)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e := <-l.events:
			if done, err := match(e); done || err != nil {
				return err
			}
		}
	}
}
