package session

import (
	"comms/contract"
	"comms/domain"
	"comms/domain/event"
	"comms/errors"
	"fmt"
	"log/slog"
	"sync"
)

const (
	ServerID   domain.ParticipantID = "0"
	ServerName                      = "Server"
)

// WorldSession is a session over the virtual world's native chat and
// instant messages. There is no negotiation: it is Ready once built, and
// SessionReady is published by Start.
type WorldSession struct {
	*core
	transport contract.WorldTransport
	server    *domain.Participant
	startOnce sync.Once
}

// NewWorldPublicSession opens the public chat channel. Only the reserved
// channel "0" is supported.
func NewWorldPublicSession(transport contract.WorldTransport, channel string,
	self *domain.Participant, log *slog.Logger, opts Options) (*WorldSession, error) {
	if channel != domain.PublicChannelID {
		return nil, fmt.Errorf("%w: world chat channel %q, only %q is supported",
			errors.ErrInvalidAddressing, channel, domain.PublicChannelID)
	}
	return newWorldSession(transport, domain.PublicChannel, channel, self, log, opts), nil
}

// NewWorldPrivateSession opens an instant message conversation with an agent.
// The agent is registered up front; its name is filled by its first message.
func NewWorldPrivateSession(transport contract.WorldTransport, agentID string,
	self *domain.Participant, log *slog.Logger, opts Options) (*WorldSession, error) {
	if agentID == "" {
		return nil, fmt.Errorf("%w: empty agent id", errors.ErrInvalidAddressing)
	}
	s := newWorldSession(transport, domain.PrivateChat, agentID, self, log, opts)
	s.participants.Resolve(domain.ParticipantID(agentID), "")
	return s, nil
}

func newWorldSession(transport contract.WorldTransport, kind domain.SessionKind, id string,
	self *domain.Participant, log *slog.Logger, opts Options) *WorldSession {
	s := &WorldSession{
		core:      newCore(id, kind, self, log, opts),
		transport: transport,
		server:    domain.NewParticipant(ServerID, ServerName),
	}
	s.mu.Lock()
	s.transitionLocked(domain.SessionReady, nil)
	s.mu.Unlock()
	return s
}

// Start announces readiness to observers. Nothing is published before it,
// so a session discarded by its owner stays silent.
func (s *WorldSession) Start() {
	s.startOnce.Do(func() {
		if s.State() != domain.SessionReady {
			return
		}
		s.publish(event.SessionReady{SessionID: s.id})
	})
}

func (s *WorldSession) Variant() Variant {
	return VariantWorld
}

// Send echoes the message into history, then hands it to the transport.
// A disconnected transport is refused before anything is recorded; a
// transport error after that is reported as MessageSendFailed.
func (s *WorldSession) Send(text string) error {
	s.mu.Lock()
	if s.state != domain.SessionReady {
		err := s.notReadyLocked()
		s.mu.Unlock()
		return err
	}
	if !s.transport.IsConnected() {
		s.mu.Unlock()
		return fmt.Errorf("%w: world transport disconnected", errors.ErrBackendUnavailable)
	}
	message := s.appendLocalLocked(text)
	s.mu.Unlock()

	s.publish(event.MessageSent{SessionID: s.id, Message: message})

	var err error
	if s.kind == domain.PublicChannel {
		err = s.transport.SendChat(s.id, text)
	} else {
		err = s.transport.SendInstantMessage(s.id, text)
	}
	if err != nil {
		s.log.Warn("Message delivery failed", "message", message.ID, "error", err)
		s.publish(event.MessageSendFailed{SessionID: s.id, MessageID: message.ID, Err: err})
	}
	return nil
}

// DeliverFromAgent appends a chat line or instant message from an avatar.
func (s *WorldSession) DeliverFromAgent(agentID, name, text string) {
	s.mu.Lock()
	if s.state != domain.SessionReady {
		s.mu.Unlock()
		return
	}
	evt, ok := s.receiveLocked(domain.ParticipantID(agentID), name, text, "", s.now(), domain.OriginLive)
	s.mu.Unlock()
	if ok {
		s.publish(evt)
	}
}

// DeliverFromServer appends a system notice. The server is an author but
// never a participant.
func (s *WorldSession) DeliverFromServer(text string) {
	s.deliverForeign(s.server, text)
}

// DeliverFromObject appends chat emitted by an in-world object.
func (s *WorldSession) DeliverFromObject(objectID, name, text string) {
	s.deliverForeign(domain.NewParticipant(domain.ParticipantID(objectID), name), text)
}

func (s *WorldSession) deliverForeign(author *domain.Participant, text string) {
	s.mu.Lock()
	if s.state != domain.SessionReady {
		s.mu.Unlock()
		return
	}
	evt, ok := s.appendReceivedLocked(author, text, "", s.now(), domain.OriginLive)
	s.mu.Unlock()
	if ok {
		s.publish(evt)
	}
}

// Close is idempotent; the world keeps no per-session state to release.
func (s *WorldSession) Close() error {
	s.mu.Lock()
	if s.state.Terminal() {
		s.mu.Unlock()
		return nil
	}
	s.transitionLocked(domain.SessionClosed, nil)
	s.mu.Unlock()
	s.publish(event.SessionClosed{SessionID: s.id})
	return nil
}

// Invalidate ends the session after the transport went away.
func (s *WorldSession) Invalidate(reason error, graceful bool) {
	s.mu.Lock()
	if s.state.Terminal() {
		s.mu.Unlock()
		return
	}
	to, cause := domain.SessionClosed, error(nil)
	if !graceful {
		to, cause = domain.SessionError, invalidation(reason)
	}
	s.transitionLocked(to, cause)
	s.mu.Unlock()
	s.log.Warn("Session invalidated by transport", "graceful", graceful, "reason", reason)
	s.publish(s.terminalEvent(to, cause))
}
