package loopback

import (
	"comms/contract"
	"comms/domain"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Manager simulates the process-wide connection manager of an IM stack.
type Manager struct {
	name      string
	protocols []string

	mu          sync.Mutex
	readyErr    error
	connectErr  error
	echo        bool
	connections []*Connection
}

func NewManager(name string, protocols ...string) *Manager {
	return &Manager{name: name, protocols: protocols}
}

// FailReadiness makes BecomeReady report err.
func (m *Manager) FailReadiness(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readyErr = err
}

// FailConnect makes the Connect of every new connection report err.
func (m *Manager) FailConnect(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectErr = err
}

// Echo makes remote parties of new connections answer every sent text.
func (m *Manager) Echo(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.echo = enabled
}

func (m *Manager) Name() string {
	return m.name
}

func (m *Manager) BecomeReady(done func(error)) {
	m.mu.Lock()
	err := m.readyErr
	m.mu.Unlock()
	done(err)
}

func (m *Manager) Protocols() []string {
	return append([]string(nil), m.protocols...)
}

func (m *Manager) NewConnection(credentials domain.Credentials) (contract.BackendConnection, error) {
	if !lo.Contains(m.protocols, credentials.Protocol) {
		return nil, fmt.Errorf("no %s account manager", credentials.Protocol)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c := &Connection{
		selfID:     credentials.Username,
		connectErr: m.connectErr,
		echo:       m.echo,
		channels:   make(map[string]*Channel),
	}
	m.connections = append(m.connections, c)
	return c, nil
}

// Connections returns every connection created so far.
func (m *Manager) Connections() []*Connection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Connection(nil), m.connections...)
}

// Connection simulates one account binding. Channels are keyed by the
// contact or room they reach.
type Connection struct {
	selfID     string
	connectErr error
	echo       bool

	mu            sync.Mutex
	connected     bool
	channels      map[string]*Channel
	queued        map[string][]contract.BackendMessage
	onIncoming    func(contract.TextChannel)
	onInvalidated func(error, bool)
}

func (c *Connection) SelfID() string {
	return c.selfID
}

func (c *Connection) Connect(done func(error)) {
	c.mu.Lock()
	c.connected = c.connectErr == nil
	err := c.connectErr
	c.mu.Unlock()
	done(err)
}

func (c *Connection) Disconnect(done func(error)) {
	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()
	done(nil)
}

func (c *Connection) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *Connection) OnIncomingChannel(handler func(contract.TextChannel)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onIncoming = handler
}

func (c *Connection) OnInvalidated(handler func(reason error, graceful bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onInvalidated = handler
}

func (c *Connection) RequestTextChannel(contactID string, done func(contract.TextChannel, error)) {
	channel, err := c.Reach(contactID)
	if err != nil {
		done(nil, err)
		return
	}
	done(channel, nil)
}

func (c *Connection) JoinRoom(roomID string, done func(contract.TextChannel, error)) {
	c.RequestTextChannel(roomID, done)
}

// Queue stores messages from a remote party before any channel reaches it.
// They become the pending messages of the channel.
func (c *Connection) Queue(targetID string, messages ...contract.BackendMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.queued == nil {
		c.queued = make(map[string][]contract.BackendMessage)
	}
	c.queued[targetID] = append(c.queued[targetID], lo.Map(messages, stamp)...)
}

// Receive simulates a remote message. Without a channel for the sender, the
// remote party opens one and the incoming channel handler is called.
func (c *Connection) Receive(targetID string, message contract.BackendMessage) error {
	message = stamp(message, 0)
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return fmt.Errorf("connection of %s is offline", c.selfID)
	}
	channel, ok := c.channels[targetID]
	handler := c.onIncoming
	if !ok {
		channel = newChannel(c, targetID, targetID)
		channel.pending = []contract.BackendMessage{message}
		c.channels[targetID] = channel
	}
	c.mu.Unlock()

	if !ok {
		if handler != nil {
			handler(channel)
		}
		return nil
	}
	channel.deliver(message)
	return nil
}

// Invalidate tears the whole connection down from the backend side.
func (c *Connection) Invalidate(reason error, graceful bool) {
	c.mu.Lock()
	c.connected = false
	handler := c.onInvalidated
	channels := lo.Values(c.channels)
	c.channels = make(map[string]*Channel)
	c.mu.Unlock()

	for _, channel := range channels {
		channel.Invalidate(reason, graceful)
	}
	if handler != nil {
		handler(reason, graceful)
	}
}

// Channel returns the open channel reaching targetID.
func (c *Connection) Channel(targetID string) (*Channel, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	channel, ok := c.channels[targetID]
	return channel, ok
}

// Reach returns the channel towards targetID, opening it locally if needed.
// Queued messages for the target become its pending messages.
func (c *Connection) Reach(targetID string) (*Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return nil, fmt.Errorf("connection of %s is offline", c.selfID)
	}
	if channel, ok := c.channels[targetID]; ok {
		return channel, nil
	}
	channel := newChannel(c, targetID, c.selfID)
	channel.pending = c.queued[targetID]
	delete(c.queued, targetID)
	c.channels[targetID] = channel
	return channel, nil
}

func (c *Connection) forget(channel *Channel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if current, ok := c.channels[channel.targetID]; ok && current == channel {
		delete(c.channels, channel.targetID)
	}
}

// Channel simulates a text channel with a pending message queue.
type Channel struct {
	id          string
	targetID    string
	initiatorID string
	connection  *Connection
	observers   observers[contract.ChannelObserver]

	mu              sync.Mutex
	pending         []contract.BackendMessage
	capabilitiesErr error
	sendErr         error
	stalled         bool
	closed          bool
	sent            []string
}

func newChannel(connection *Connection, targetID, initiatorID string) *Channel {
	return &Channel{
		id:          uuid.NewString(),
		targetID:    targetID,
		initiatorID: initiatorID,
		connection:  connection,
	}
}

func (ch *Channel) ID() string {
	return ch.id
}

func (ch *Channel) TargetID() string {
	return ch.targetID
}

func (ch *Channel) InitiatorID() string {
	return ch.initiatorID
}

// FailCapabilities makes BecomeReady report err.
func (ch *Channel) FailCapabilities(err error) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.capabilitiesErr = err
}

// FailSends makes every later Send report err.
func (ch *Channel) FailSends(err error) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.sendErr = err
}

// Stall makes ListPendingMessages block until its context ends.
func (ch *Channel) Stall() {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.stalled = true
}

func (ch *Channel) BecomeReady(features []contract.ChannelFeature, done func(error)) {
	ch.mu.Lock()
	err := ch.capabilitiesErr
	ch.mu.Unlock()
	if err == nil && len(features) == 0 {
		err = fmt.Errorf("no feature requested")
	}
	done(err)
}

func (ch *Channel) ListPendingMessages(ctx context.Context) ([]contract.BackendMessage, error) {
	ch.mu.Lock()
	stalled := ch.stalled
	pending := append([]contract.BackendMessage(nil), ch.pending...)
	ch.mu.Unlock()
	if stalled {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return pending, ctx.Err()
}

// Pending returns the messages not yet delivered live.
func (ch *Channel) Pending() []contract.BackendMessage {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return append([]contract.BackendMessage(nil), ch.pending...)
}

// Flush redelivers every pending message live, as a backend does once a
// client subscribes, and empties the queue.
func (ch *Channel) Flush() {
	for _, m := range ch.Pending() {
		ch.deliver(m)
	}
}

func (ch *Channel) Send(text string, done func(error)) {
	ch.mu.Lock()
	err := ch.sendErr
	if ch.closed {
		err = fmt.Errorf("channel %s closed", ch.id)
	}
	if err == nil {
		ch.sent = append(ch.sent, text)
	}
	ch.mu.Unlock()
	done(err)

	if err == nil && ch.connection.echo {
		ch.deliver(stamp(contract.BackendMessage{SenderID: ch.targetID, Text: text}, 0))
	}
}

// Sent returns the texts accepted by Send.
func (ch *Channel) Sent() []string {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return append([]string(nil), ch.sent...)
}

func (ch *Channel) Subscribe(observer contract.ChannelObserver) func() {
	return ch.observers.add(observer)
}

func (ch *Channel) RequestClose(done func(error)) {
	ch.mu.Lock()
	ch.closed = true
	ch.mu.Unlock()
	ch.connection.forget(ch)
	done(nil)
}

// Leave simulates a participant leaving the channel.
func (ch *Channel) Leave(participantID string) {
	for _, o := range ch.observers.snapshot() {
		o.ParticipantRemoved(participantID)
	}
}

// Invalidate simulates the remote side tearing the channel down.
func (ch *Channel) Invalidate(reason error, graceful bool) {
	ch.mu.Lock()
	ch.closed = true
	ch.mu.Unlock()
	ch.connection.forget(ch)
	for _, o := range ch.observers.snapshot() {
		o.Invalidated(reason, graceful)
	}
}

// deliver hands a message to the live observers, removing it from the
// pending queue. Without observers the message stays pending.
func (ch *Channel) deliver(message contract.BackendMessage) {
	live := ch.observers.snapshot()
	ch.mu.Lock()
	if ch.closed {
		ch.mu.Unlock()
		return
	}
	if len(live) == 0 {
		if !lo.ContainsBy(ch.pending, func(m contract.BackendMessage) bool { return m.ID == message.ID }) {
			ch.pending = append(ch.pending, message)
		}
		ch.mu.Unlock()
		return
	}
	ch.pending = lo.Reject(ch.pending, func(m contract.BackendMessage, _ int) bool { return m.ID == message.ID })
	ch.mu.Unlock()

	for _, o := range live {
		o.MessageReceived(message)
	}
}

// stamp gives a message the id and timestamp a backend would.
func stamp(message contract.BackendMessage, _ int) contract.BackendMessage {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}
	return message
}
