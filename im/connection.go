package im

import (
	"comms/contract"
	"comms/domain"
	"comms/domain/event"
	"comms/errors"
	"comms/runtime"
	"comms/session"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Connection is one authenticated binding to the protocol backend and the
// owner of the sessions opened through it.
type Connection struct {
	id          string
	credentials domain.Credentials
	backend     contract.BackendConnection
	dispatcher  contract.Dispatcher
	log         *slog.Logger
	fanout      *runtime.Fanout
	opts        session.Options
	self        *domain.Participant
	startOnce   sync.Once

	mu       sync.Mutex
	state    domain.ConnectionState
	err      error
	sessions []*session.ProtocolSession
}

func NewConnection(backend contract.BackendConnection, credentials domain.Credentials,
	dispatcher contract.Dispatcher, log *slog.Logger, opts session.Options) *Connection {
	id := uuid.NewString()
	log = log.With("connection", id, "protocol", credentials.Protocol)
	c := &Connection{
		id:          id,
		credentials: credentials,
		backend:     backend,
		dispatcher:  dispatcher,
		log:         log,
		fanout:      runtime.NewFanout(log, opts.SinkTimeout),
		opts:        opts,
		self:        domain.NewParticipant(domain.ParticipantID(backend.SelfID()), session.SelfName),
		state:       domain.ConnectionInitializing,
	}
	for _, sink := range opts.Observers {
		c.fanout.Subscribe(sink)
	}
	return c
}

// Start registers the backend handlers and posts the connect request.
func (c *Connection) Start() {
	c.startOnce.Do(func() {
		c.backend.OnIncomingChannel(func(channel contract.TextChannel) {
			c.post(func() { c.onIncomingChannel(channel) })
		})
		c.backend.OnInvalidated(func(reason error, graceful bool) {
			c.post(func() { c.onInvalidated(reason, graceful) })
		})
		c.post(c.connect)
	})
}

func (c *Connection) ID() string {
	return c.id
}

func (c *Connection) Protocol() string {
	return c.credentials.Protocol
}

func (c *Connection) State() domain.ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Connection) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Connection) Subscribe(sink contract.EventSink) func() {
	return c.fanout.Subscribe(sink)
}

// Sessions returns the sessions not yet closed or failed.
func (c *Connection) Sessions() []contract.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pruneLocked()
	return lo.Map(c.sessions, func(s *session.ProtocolSession, _ int) contract.Session { return s })
}

// OpenSession starts an outbound session. An address that already has a
// live session of the same kind gets that session back.
func (c *Connection) OpenSession(kind domain.SessionKind, address string) (contract.Session, error) {
	c.mu.Lock()
	if c.state != domain.ConnectionReady {
		err := fmt.Errorf("%w: connection %s is %s", errors.ErrNotReady, c.id, c.state)
		c.mu.Unlock()
		return nil, err
	}
	if existing, ok := c.findLocked(kind, address); ok {
		c.mu.Unlock()
		return existing, nil
	}
	c.mu.Unlock()

	s, err := session.OpenProtocolSession(c.backend, kind, address, c.self, c.dispatcher, c.log, c.opts)
	if err != nil {
		return nil, err
	}
	if existing, added, err := c.register(s); !added {
		return existing, err
	}
	c.fanout.Publish(event.SessionOpened{ConnectionID: c.id, SessionID: s.ID(), Kind: kind})
	s.Start()
	return s, nil
}

// Close closes every session, then asks the backend to disconnect.
func (c *Connection) Close() error {
	c.mu.Lock()
	if c.state.Terminal() {
		c.mu.Unlock()
		return nil
	}
	c.transitionLocked(domain.ConnectionClosed, nil)
	sessions := c.sessions
	c.sessions = nil
	c.mu.Unlock()

	for _, s := range sessions {
		_ = s.Close()
	}
	c.backend.Disconnect(func(err error) {
		if err != nil {
			c.log.Warn("Backend disconnect failed", "error", err)
		}
	})
	c.fanout.Publish(event.ConnectionClosed{ConnectionID: c.id})
	return nil
}

func (c *Connection) connect() {
	if c.State() != domain.ConnectionInitializing {
		return
	}
	c.backend.Connect(func(err error) {
		c.post(func() { c.onConnected(err) })
	})
}

func (c *Connection) onConnected(err error) {
	c.mu.Lock()
	if c.state != domain.ConnectionInitializing {
		c.mu.Unlock()
		return
	}
	if err != nil {
		cause := fmt.Errorf("%w: connect: %v", errors.ErrNegotiationFailed, err)
		c.transitionLocked(domain.ConnectionError, cause)
		c.mu.Unlock()
		c.log.Error("Connection failed", "error", cause)
		c.fanout.Publish(event.ConnectionFailed{ConnectionID: c.id, Err: cause})
		return
	}
	c.transitionLocked(domain.ConnectionReady, nil)
	c.mu.Unlock()
	c.fanout.Publish(event.ConnectionReady{ConnectionID: c.id})
}

// onIncomingChannel turns a channel opened by a remote party into an inbound
// private session.
func (c *Connection) onIncomingChannel(channel contract.TextChannel) {
	if c.State() != domain.ConnectionReady {
		c.log.Warn("Incoming channel refused", "channel", channel.ID(), "state", c.State().String())
		c.release(channel)
		return
	}
	s, err := session.AcceptProtocolSession(channel, domain.PrivateChat, c.self, c.dispatcher, c.log, c.opts)
	if err != nil {
		c.log.Warn("Incoming channel refused", "channel", channel.ID(), "error", err)
		c.release(channel)
		return
	}
	if _, added, _ := c.register(s); !added {
		c.log.Info("Incoming channel duplicates a live session", "session", s.ID())
		c.release(channel)
		return
	}
	c.fanout.Publish(event.SessionOpened{ConnectionID: c.id, SessionID: s.ID(), Kind: s.Kind(), Inbound: true})
	s.Start()
}

// onInvalidated applies a backend teardown to the connection and its sessions.
func (c *Connection) onInvalidated(reason error, graceful bool) {
	c.mu.Lock()
	if c.state.Terminal() {
		c.mu.Unlock()
		return
	}
	to, cause := domain.ConnectionClosed, error(nil)
	if !graceful {
		to = domain.ConnectionError
		cause = fmt.Errorf("%w: %v", errors.ErrInvalidated, reason)
	}
	c.transitionLocked(to, cause)
	sessions := c.sessions
	c.sessions = nil
	c.mu.Unlock()

	c.log.Warn("Connection invalidated by backend", "graceful", graceful, "reason", reason)
	for _, s := range sessions {
		if graceful {
			_ = s.Close()
			continue
		}
		s.Invalidate(reason, false)
	}
	if graceful {
		c.fanout.Publish(event.ConnectionClosed{ConnectionID: c.id})
		return
	}
	c.fanout.Publish(event.ConnectionFailed{ConnectionID: c.id, Err: cause})
}

// register adds s unless the connection left Ready or a live session with
// the same address exists, in which case that session is returned.
func (c *Connection) register(s *session.ProtocolSession) (contract.Session, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != domain.ConnectionReady {
		return nil, false, fmt.Errorf("%w: connection %s is %s", errors.ErrNotReady, c.id, c.state)
	}
	if existing, ok := c.findLocked(s.Kind(), s.ID()); ok {
		return existing, false, nil
	}
	c.sessions = append(c.sessions, s)
	return s, true, nil
}

// Caller holds mu.
func (c *Connection) findLocked(kind domain.SessionKind, address string) (*session.ProtocolSession, bool) {
	c.pruneLocked()
	return lo.Find(c.sessions, func(s *session.ProtocolSession) bool {
		return s.ID() == address && s.Kind() == kind
	})
}

// pruneLocked drops closed and failed sessions. Caller holds mu.
func (c *Connection) pruneLocked() {
	c.sessions = lo.Reject(c.sessions, func(s *session.ProtocolSession, _ int) bool {
		return s.State().Terminal()
	})
}

// Caller holds mu.
func (c *Connection) transitionLocked(to domain.ConnectionState, cause error) {
	if !c.state.CanTransition(to) {
		return
	}
	c.log.Info("Connection state changed", "from", c.state.String(), "to", to.String())
	c.state = to
	if to == domain.ConnectionError {
		c.err = cause
	}
}

func (c *Connection) release(channel contract.TextChannel) {
	channel.RequestClose(func(err error) {
		if err != nil {
			c.log.Warn("Channel close request failed", "channel", channel.ID(), "error", err)
		}
	})
}

func (c *Connection) post(task func()) {
	if !c.dispatcher.Post(task) {
		c.log.Debug("Owner loop stopped, callback dropped")
	}
}
