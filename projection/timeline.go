// Package projection builds local, per-session timelines from observed
// events. It does not emit events or interact with the UI directly.
package projection

import (
	"comms/domain/event"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Line is one message as a reader sees it.
type Line struct {
	MessageID uuid.UUID
	Author    string
	Text      string
	At        time.Time
	Outgoing  bool
	Failed    bool
}

// Timeline holds a local view of every session it observed, including
// its state.
type Timeline struct {
	mu     sync.RWMutex
	order  []string
	lines  map[string][]Line
	states map[string]string
}

func NewTimeline() *Timeline {
	return &Timeline{
		lines:  make(map[string][]Line),
		states: make(map[string]string),
	}
}

func (t *Timeline) Consume(_ context.Context, e event.Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch evt := e.(type) {
	case event.SessionOpened:
		t.track(evt.SessionID, "opened")
	case event.SessionReady:
		t.track(evt.SessionID, "ready")
	case event.SessionClosed:
		t.track(evt.SessionID, "closed")
	case event.SessionFailed:
		t.track(evt.SessionID, "failed")
	case event.MessageReceived:
		t.append(evt.SessionID, Line{
			MessageID: evt.Message.ID,
			Author:    evt.Message.AuthorName(),
			Text:      evt.Message.Text,
			At:        evt.Message.Timestamp,
		})
	case event.MessageSent:
		t.append(evt.SessionID, Line{
			MessageID: evt.Message.ID,
			Author:    evt.Message.AuthorName(),
			Text:      evt.Message.Text,
			At:        evt.Message.Timestamp,
			Outgoing:  true,
		})
	case event.MessageSendFailed:
		lines := t.lines[evt.SessionID]
		for i := range lines {
			if lines[i].MessageID == evt.MessageID {
				lines[i].Failed = true
			}
		}
	}
	return nil
}

// Lines returns a copy of the lines of a session in arrival order.
func (t *Timeline) Lines(sessionID string) []Line {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Line(nil), t.lines[sessionID]...)
}

// State returns the last known state of a session, empty if unknown.
func (t *Timeline) State(sessionID string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.states[sessionID]
}

// Sessions lists observed sessions in the order they were first seen.
func (t *Timeline) Sessions() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.order...)
}

func (t *Timeline) track(sessionID, state string) {
	if _, ok := t.states[sessionID]; !ok {
		t.order = append(t.order, sessionID)
	}
	t.states[sessionID] = state
}

func (t *Timeline) append(sessionID string, line Line) {
	if _, ok := t.states[sessionID]; !ok {
		t.track(sessionID, "ready")
	}
	t.lines[sessionID] = append(t.lines[sessionID], line)
}
