// Package session implements the two session variants and the state machine
// they share. A session owns its participant set and its ordered history;
// nothing outside the session mutates them.
package session

import (
	"comms/contract"
	"comms/domain"
	"comms/domain/event"
	"comms/errors"
	"comms/runtime"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	DefaultPendingTimeout = 5 * time.Second
	SelfName              = "You"
)

// Variant tags the backend family a session belongs to.
type Variant int

const (
	VariantProtocol Variant = iota
	VariantWorld
)

func (v Variant) String() string {
	switch v {
	case VariantProtocol:
		return "protocol"
	case VariantWorld:
		return "world"
	default:
		return "unknown"
	}
}

type Options struct {
	SinkTimeout time.Duration
	// PendingTimeout bounds the pending message enumeration of protocol
	// sessions. Zero means DefaultPendingTimeout.
	PendingTimeout time.Duration
	// Observers are subscribed before the session does anything observable.
	Observers []contract.EventSink
	Clock     func() time.Time
}

func (o Options) pendingTimeout() time.Duration {
	if o.PendingTimeout <= 0 {
		return DefaultPendingTimeout
	}
	return o.PendingTimeout
}

func (o Options) clock() func() time.Time {
	if o.Clock == nil {
		return time.Now
	}
	return o.Clock
}

// core is the state shared by both variants.
// Fields below mu are guarded by it; notifications are always published
// after mu is released.
type core struct {
	id     string
	kind   domain.SessionKind
	self   *domain.Participant
	log    *slog.Logger
	fanout *runtime.Fanout
	now    func() time.Time

	mu           sync.Mutex
	state        domain.SessionState
	err          error
	participants *domain.ParticipantSet
	history      *domain.History
}

func newCore(id string, kind domain.SessionKind, self *domain.Participant, log *slog.Logger, opts Options) *core {
	log = log.With("session", id, "kind", kind.String())
	c := &core{
		id:           id,
		kind:         kind,
		self:         self,
		log:          log,
		fanout:       runtime.NewFanout(log, opts.SinkTimeout),
		now:          opts.clock(),
		state:        domain.SessionInitializing,
		participants: domain.NewParticipantSet(),
		history:      domain.NewHistory(),
	}
	for _, sink := range opts.Observers {
		c.fanout.Subscribe(sink)
	}
	return c
}

func (c *core) ID() string {
	return c.id
}

func (c *core) Kind() domain.SessionKind {
	return c.kind
}

// Self is the local participant authoring sent messages.
func (c *core) Self() *domain.Participant {
	return c.self
}

func (c *core) State() domain.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *core) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// History returns a copy of the ordered history.
func (c *core) History() []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Snapshot()
}

func (c *core) Participants() []*domain.Participant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.participants.All()
}

func (c *core) Subscribe(sink contract.EventSink) func() {
	return c.fanout.Subscribe(sink)
}

// transitionLocked applies a state change allowed by the state machine.
// Caller holds mu.
func (c *core) transitionLocked(to domain.SessionState, cause error) bool {
	if !c.state.CanTransition(to) {
		return false
	}
	c.log.Info("Session state changed", "from", c.state.String(), "to", to.String())
	c.state = to
	if to == domain.SessionError {
		c.err = cause
	}
	return true
}

// notReadyLocked builds the error returned to callers of Send outside Ready.
// Caller holds mu.
func (c *core) notReadyLocked() error {
	return fmt.Errorf("%w: session %s is %s", errors.ErrNotReady, c.id, c.state)
}

// appendLocalLocked records the optimistic echo of a sent message.
// Caller holds mu and has checked the session is Ready.
func (c *core) appendLocalLocked(text string) domain.Message {
	message := domain.NewMessage(c.self, text, c.now(), domain.OriginLocal)
	c.history.Append(message)
	return message
}

// receiveLocked resolves the author and appends an inbound message. The
// boolean is false when the backend id was already delivered.
// Caller holds mu.
func (c *core) receiveLocked(authorID domain.ParticipantID, authorName, text, backendID string, at time.Time, origin domain.Origin) (event.MessageReceived, bool) {
	author, created := c.participants.Resolve(authorID, authorName)
	if created {
		c.log.Debug("Participant joined", "participant", authorID)
	}
	return c.appendReceivedLocked(author, text, backendID, at, origin)
}

// appendReceivedLocked appends a message from an author that is not part of
// the participant set, such as the world server. Caller holds mu.
func (c *core) appendReceivedLocked(author *domain.Participant, text, backendID string, at time.Time, origin domain.Origin) (event.MessageReceived, bool) {
	if at.IsZero() {
		at = c.now()
	}
	message := domain.NewMessage(author, text, at, origin).WithBackendID(backendID)
	if !c.history.Append(message) {
		c.log.Debug("Duplicate message ignored", "backend_id", backendID)
		return event.MessageReceived{}, false
	}
	return event.MessageReceived{SessionID: c.id, Message: message, Participant: author}, true
}

// removeParticipantLocked drops a participant; its messages keep the reference.
// Caller holds mu.
func (c *core) removeParticipantLocked(id domain.ParticipantID) (event.Event, bool) {
	p, ok := c.participants.Remove(id)
	if !ok {
		return nil, false
	}
	return event.ParticipantLeft{SessionID: c.id, Participant: p}, true
}

func (c *core) terminalEvent(state domain.SessionState, err error) event.Event {
	if state == domain.SessionError {
		return event.SessionFailed{SessionID: c.id, Err: err}
	}
	return event.SessionClosed{SessionID: c.id}
}

func (c *core) publish(events ...event.Event) {
	for _, e := range events {
		c.fanout.Publish(e)
	}
}
