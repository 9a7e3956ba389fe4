// Package domain contains core concepts of the communication system.
// This file defines Message records and the ordered history they live in.
// Messages are immutable once constructed.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Origin tells how a message entered a session history.
type Origin int

const (
	OriginLocal Origin = iota
	OriginPending
	OriginLive
)

func (o Origin) String() string {
	switch o {
	case OriginLocal:
		return "local"
	case OriginPending:
		return "pending"
	case OriginLive:
		return "live"
	default:
		return "unknown"
	}
}

// Message represents one immutable chat utterance.
type Message struct {
	ID        uuid.UUID // unique identifier
	BackendID string    // stable identity given by the backend, may be empty
	Author    *Participant
	Text      string
	Timestamp time.Time
	Origin    Origin
}

func NewMessage(author *Participant, text string, at time.Time, origin Origin) Message {
	return Message{
		ID:        uuid.New(),
		Author:    author,
		Text:      text,
		Timestamp: at,
		Origin:    origin,
	}
}

// WithBackendID returns a copy of the message carrying the backend identity.
func (m Message) WithBackendID(id string) Message {
	m.BackendID = id
	return m
}

func (m Message) AuthorID() ParticipantID {
	if m.Author == nil {
		return ""
	}
	return m.Author.ID()
}

func (m Message) AuthorName() string {
	if m.Author == nil {
		return ""
	}
	return m.Author.DisplayName()
}

// History is the append-only, ordered message log of one session.
// Messages carrying a backend id are accepted at most once.
// It is not safe for concurrent use; the owning session serializes access.
type History struct {
	messages []Message
	seen     map[string]struct{}
}

func NewHistory() *History {
	return &History{seen: make(map[string]struct{})}
}

// Append adds the message at the end of the history. It returns false when a
// message with the same backend id is already present.
func (h *History) Append(message Message) bool {
	if message.BackendID != "" {
		if _, ok := h.seen[message.BackendID]; ok {
			return false
		}
		h.seen[message.BackendID] = struct{}{}
	}
	h.messages = append(h.messages, message)
	return true
}

// Merge appends messages in the given order and returns the ones accepted.
func (h *History) Merge(messages []Message) []Message {
	var accepted []Message
	for _, m := range messages {
		if h.Append(m) {
			accepted = append(accepted, m)
		}
	}
	return accepted
}

func (h *History) Contains(backendID string) bool {
	_, ok := h.seen[backendID]
	return ok
}

// Snapshot returns a copy of the history at call time.
func (h *History) Snapshot() []Message {
	res := make([]Message, len(h.messages))
	copy(res, h.messages)
	return res
}

func (h *History) Len() int {
	return len(h.messages)
}
