//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"comms/domain"
	"comms/domain/event"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink observes notifications. Consume is called on the publisher's
// goroutine and must not block past the context deadline.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// SinkFunc adapts a plain function to an EventSink.
type SinkFunc func(ctx context.Context, e event.Event) error

func (f SinkFunc) Consume(ctx context.Context, e event.Event) error {
	return f(ctx, e)
}

// Dispatcher runs tasks on the owner context of a provider graph.
// Post returns false once the owner context is gone.
type Dispatcher interface {
	Post(task func()) bool
}

type Session interface {
	ID() string
	Kind() domain.SessionKind
	State() domain.SessionState
	// Err returns the failure that moved the session to Error, if any.
	Err() error
	Send(text string) error
	Close() error
	History() []domain.Message
	Participants() []*domain.Participant
	Subscribe(sink EventSink) (unsubscribe func())
}

type Connection interface {
	ID() string
	Protocol() string
	State() domain.ConnectionState
	Err() error
	OpenSession(kind domain.SessionKind, address string) (Session, error)
	Sessions() []Session
	Close() error
	Subscribe(sink EventSink) (unsubscribe func())
}

type ConnectionProvider interface {
	Name() string
	State() domain.ProviderState
	Err() error
	OpenConnection(credentials domain.Credentials) (Connection, error)
	SupportedProtocols() []string
	Connections() []Connection
	Dispose() error
	Subscribe(sink EventSink) (unsubscribe func())
}

// ChannelFeature names a capability a text channel must acknowledge
// before it can carry messages.
type ChannelFeature string

const (
	FeatureCore                ChannelFeature = "core"
	FeatureMessageQueue        ChannelFeature = "message-queue"
	FeatureMessageCapabilities ChannelFeature = "message-capabilities"
)

// BackendMessage is a text message as reported by a protocol backend.
// ID is optional; when set it identifies the message across the pending
// and live streams.
type BackendMessage struct {
	ID         string
	SenderID   string
	SenderName string
	Text       string
	Timestamp  time.Time
}

// ConnectionManager is the process-scoped manager of a protocol backend.
// It must outlive every connection created from it.
type ConnectionManager interface {
	Name() string
	BecomeReady(done func(error))
	Protocols() []string
	NewConnection(credentials domain.Credentials) (BackendConnection, error)
}

// BackendConnection is one authenticated binding to a protocol backend.
// Callbacks may run on any goroutine.
type BackendConnection interface {
	SelfID() string
	Connect(done func(error))
	RequestTextChannel(contactID string, done func(TextChannel, error))
	JoinRoom(roomID string, done func(TextChannel, error))
	OnIncomingChannel(handler func(TextChannel))
	OnInvalidated(handler func(reason error, graceful bool))
	Disconnect(done func(error))
}

type TextChannel interface {
	ID() string
	TargetID() string
	InitiatorID() string
	BecomeReady(features []ChannelFeature, done func(error))
	// ListPendingMessages blocks until the backend answers or ctx expires.
	ListPendingMessages(ctx context.Context) ([]BackendMessage, error)
	Send(text string, done func(error))
	Subscribe(observer ChannelObserver) (unsubscribe func())
	RequestClose(done func(error))
}

type ChannelObserver interface {
	MessageReceived(message BackendMessage)
	ParticipantRemoved(participantID string)
	Invalidated(reason error, graceful bool)
}

// WorldTransport is the virtual world's native chat and IM transport.
type WorldTransport interface {
	IsConnected() bool
	SendChat(channel string, text string) error
	SendInstantMessage(agentID string, text string) error
	Subscribe(observer WorldObserver) (unsubscribe func())
}

type WorldObserver interface {
	ChatFromAgent(agentID, name, text string)
	ChatFromServer(text string)
	ChatFromObject(objectID, name, text string)
	InstantMessage(agentID, name, text string)
	Disconnected(reason error)
}
