package world

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

// Connection routes the world transport traffic to its sessions: public
// chat to the session of channel "0", instant messages to one private
// session per agent. Sessions for unseen senders are created on arrival.
type Connection struct {
	id          string
	credentials domain.Credentials
	transport   contract.WorldTransport
	dispatcher  contract.Dispatcher
	log         *slog.Logger
	fanout      *runtime.Fanout
	opts        session.Options
	self        *domain.Participant
	startOnce   sync.Once

	mu          sync.Mutex
	state       domain.ConnectionState
	err         error
	sessions    []*session.WorldSession
	unsubscribe func()
}

func NewConnection(transport contract.WorldTransport, credentials domain.Credentials,
	dispatcher contract.Dispatcher, log *slog.Logger, opts session.Options) *Connection {
	id := uuid.NewString()
	log = log.With("connection", id, "protocol", Protocol)
	c := &Connection{
		id:          id,
		credentials: credentials,
		transport:   transport,
		dispatcher:  dispatcher,
		log:         log,
		fanout:      runtime.NewFanout(log, opts.SinkTimeout),
		opts:        opts,
		self:        domain.NewParticipant(domain.ParticipantID(credentials.Username), session.SelfName),
		state:       domain.ConnectionInitializing,
	}
	for _, sink := range opts.Observers {
		c.fanout.Subscribe(sink)
	}
	return c
}

// Start subscribes to the transport and posts the readiness check.
func (c *Connection) Start() {
	c.startOnce.Do(func() {
		unsubscribe := c.transport.Subscribe(observer{connection: c})
		c.mu.Lock()
		c.unsubscribe = unsubscribe
		c.mu.Unlock()
		c.post(c.becomeReady)
	})
}

func (c *Connection) ID() string {
	return c.id
}

func (c *Connection) Protocol() string {
	return Protocol
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

func (c *Connection) Sessions() []contract.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pruneLocked()
	return lo.Map(c.sessions, func(s *session.WorldSession, _ int) contract.Session { return s })
}

// OpenSession opens the public chat (address "0") or an instant message
// session with an agent. A live session for the address is returned as is.
func (c *Connection) OpenSession(kind domain.SessionKind, address string) (contract.Session, error) {
	s, err := c.obtain(kind, address, false)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (c *Connection) Close() error {
	c.mu.Lock()
	if c.state.Terminal() {
		c.mu.Unlock()
		return nil
	}
	c.transitionLocked(domain.ConnectionClosed, nil)
	sessions, unsubscribe := c.detachLocked()
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	for _, s := range sessions {
		_ = s.Close()
	}
	c.fanout.Publish(event.ConnectionClosed{ConnectionID: c.id})
	return nil
}

func (c *Connection) becomeReady() {
	connected := c.transport.IsConnected()

	c.mu.Lock()
	if c.state != domain.ConnectionInitializing {
		c.mu.Unlock()
		return
	}
	if !connected {
		cause := fmt.Errorf("%w: world transport disconnected", errors.ErrBackendUnavailable)
		c.transitionLocked(domain.ConnectionError, cause)
		c.mu.Unlock()
		c.fanout.Publish(event.ConnectionFailed{ConnectionID: c.id, Err: cause})
		return
	}
	c.transitionLocked(domain.ConnectionReady, nil)
	c.mu.Unlock()
	c.fanout.Publish(event.ConnectionReady{ConnectionID: c.id})
}

func (c *Connection) onDisconnected(reason error) {
	c.mu.Lock()
	if c.state.Terminal() {
		c.mu.Unlock()
		return
	}
	cause := fmt.Errorf("%w: %v", errors.ErrInvalidated, reason)
	c.transitionLocked(domain.ConnectionError, cause)
	sessions, unsubscribe := c.detachLocked()
	c.mu.Unlock()

	c.log.Warn("World transport disconnected", "reason", reason)
	if unsubscribe != nil {
		unsubscribe()
	}
	for _, s := range sessions {
		s.Invalidate(reason, false)
	}
	c.fanout.Publish(event.ConnectionFailed{ConnectionID: c.id, Err: cause})
}

// inbound returns the session for traffic arriving on the transport, or
// false when the connection does not accept traffic.
func (c *Connection) inbound(kind domain.SessionKind, address string) (*session.WorldSession, bool) {
	s, err := c.obtain(kind, address, true)
	if err != nil {
		c.log.Debug("Inbound traffic dropped", "kind", kind.String(), "address", address, "error", err)
		return nil, false
	}
	return s, true
}

func (c *Connection) obtain(kind domain.SessionKind, address string, inbound bool) (*session.WorldSession, error) {
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
	// Construction only validates the address and touches no backend, so it
	// runs under the lock and no duplicate can be built for one address.
	var s *session.WorldSession
	var err error
	if kind == domain.PublicChannel {
		s, err = session.NewWorldPublicSession(c.transport, address, c.self, c.log, c.opts)
	} else {
		s, err = session.NewWorldPrivateSession(c.transport, address, c.self, c.log, c.opts)
	}
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	c.sessions = append(c.sessions, s)
	c.mu.Unlock()

	c.fanout.Publish(event.SessionOpened{ConnectionID: c.id, SessionID: s.ID(), Kind: kind, Inbound: inbound})
	s.Start()
	return s, nil
}

// Caller holds mu.
func (c *Connection) findLocked(kind domain.SessionKind, address string) (*session.WorldSession, bool) {
	c.pruneLocked()
	return lo.Find(c.sessions, func(s *session.WorldSession) bool {
		return s.ID() == address && s.Kind() == kind
	})
}

// Caller holds mu.
func (c *Connection) pruneLocked() {
	c.sessions = lo.Reject(c.sessions, func(s *session.WorldSession, _ int) bool {
		return s.State().Terminal()
	})
}

// Caller holds mu.
func (c *Connection) detachLocked() ([]*session.WorldSession, func()) {
	sessions, unsubscribe := c.sessions, c.unsubscribe
	c.sessions, c.unsubscribe = nil, nil
	return sessions, unsubscribe
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

func (c *Connection) post(task func()) {
	if !c.dispatcher.Post(task) {
		c.log.Debug("Owner loop stopped, callback dropped")
	}
}

// observer hops transport notifications onto the owner loop and routes
// them to sessions.
type observer struct {
	connection *Connection
}

func (o observer) ChatFromAgent(agentID, name, text string) {
	o.connection.post(func() {
		if s, ok := o.connection.inbound(domain.PublicChannel, domain.PublicChannelID); ok {
			s.DeliverFromAgent(agentID, name, text)
		}
	})
}

func (o observer) ChatFromServer(text string) {
	o.connection.post(func() {
		if s, ok := o.connection.inbound(domain.PublicChannel, domain.PublicChannelID); ok {
			s.DeliverFromServer(text)
		}
	})
}

func (o observer) ChatFromObject(objectID, name, text string) {
	o.connection.post(func() {
		if s, ok := o.connection.inbound(domain.PublicChannel, domain.PublicChannelID); ok {
			s.DeliverFromObject(objectID, name, text)
		}
	})
}

func (o observer) InstantMessage(agentID, name, text string) {
	o.connection.post(func() {
		if s, ok := o.connection.inbound(domain.PrivateChat, agentID); ok {
			s.DeliverFromAgent(agentID, name, text)
		}
	})
}

func (o observer) Disconnected(reason error) {
	o.connection.post(func() { o.connection.onDisconnected(reason) })
}
