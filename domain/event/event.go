// Package event defines the notifications published to observers of
// providers, connections and sessions.
package event

import (
	"comms/domain"

	"github.com/google/uuid"
)

// Event is a notification about one entity, identified by Subject.
type Event interface {
	Subject() string
}

type SessionOpened struct {
	ConnectionID string
	SessionID    string
	Kind         domain.SessionKind
	Inbound      bool
}

func (e SessionOpened) Subject() string { return e.ConnectionID }

type SessionReady struct {
	SessionID string
}

func (e SessionReady) Subject() string { return e.SessionID }

type MessageReceived struct {
	SessionID   string
	Message     domain.Message
	Participant *domain.Participant
}

func (e MessageReceived) Subject() string { return e.SessionID }

type MessageSent struct {
	SessionID string
	Message   domain.Message
}

func (e MessageSent) Subject() string { return e.SessionID }

// MessageSendFailed follows a MessageSent whose transport delivery failed.
// The local echo stays in history.
type MessageSendFailed struct {
	SessionID string
	MessageID uuid.UUID
	Err       error
}

func (e MessageSendFailed) Subject() string { return e.SessionID }

type ParticipantLeft struct {
	SessionID   string
	Participant *domain.Participant
}

func (e ParticipantLeft) Subject() string { return e.SessionID }

type SessionClosed struct {
	SessionID string
}

func (e SessionClosed) Subject() string { return e.SessionID }

type SessionFailed struct {
	SessionID string
	Err       error
}

func (e SessionFailed) Subject() string { return e.SessionID }

type ConnectionReady struct {
	ConnectionID string
}

func (e ConnectionReady) Subject() string { return e.ConnectionID }

type ConnectionClosed struct {
	ConnectionID string
}

func (e ConnectionClosed) Subject() string { return e.ConnectionID }

type ConnectionFailed struct {
	ConnectionID string
	Err          error
}

func (e ConnectionFailed) Subject() string { return e.ConnectionID }

type ProviderReady struct {
	Provider string
}

func (e ProviderReady) Subject() string { return e.Provider }

type ProtocolListUpdated struct {
	Provider  string
	Protocols []string
}

func (e ProtocolListUpdated) Subject() string { return e.Provider }

type ProviderFailed struct {
	Provider string
	Err      error
}

func (e ProviderFailed) Subject() string { return e.Provider }
