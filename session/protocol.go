package session

import (
	"comms/contract"
	"comms/domain"
	"comms/domain/event"
	"comms/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var requiredFeatures = []contract.ChannelFeature{
	contract.FeatureCore,
	contract.FeatureMessageQueue,
	contract.FeatureMessageCapabilities,
}

type stage int

const (
	stageRequestChannel stage = iota
	stageAwaitCapabilities
	stageSubscribeLive
	stageDrainPending
	stageReady
)

func (s stage) String() string {
	switch s {
	case stageRequestChannel:
		return "request-channel"
	case stageAwaitCapabilities:
		return "await-capabilities"
	case stageSubscribeLive:
		return "subscribe-live"
	case stageDrainPending:
		return "drain-pending"
	case stageReady:
		return "ready"
	default:
		return "unknown"
	}
}

// ProtocolSession is a session carried by a text channel of a protocol
// backend. It negotiates the channel in stages before accepting messages:
//
//	request-channel -> await-capabilities -> subscribe-live -> drain-pending -> ready
//
// Every stage runs on the dispatcher and starts by checking the session is
// still Initializing, so Close at any point ends the chain.
//
// Live messages arriving while pending messages are listed are held and
// appended after them; a message reported in both streams with the same
// backend id is kept once.
type ProtocolSession struct {
	*core
	dispatcher     contract.Dispatcher
	backend        contract.BackendConnection
	pendingTimeout time.Duration
	start          func()
	startOnce      sync.Once

	// guarded by core.mu
	stage       stage
	channel     contract.TextChannel
	unsubscribe func()
	cancelDrain context.CancelFunc
	held        []contract.BackendMessage
	// sending counts Send calls handing a message to the channel. A
	// teardown meanwhile leaves the release to the last of them.
	sending         int
	releaseDeferred bool
}

// OpenProtocolSession creates an outbound session towards a contact (private
// chat) or a chat room (public channel). Negotiation runs on the dispatcher
// once Start is called.
func OpenProtocolSession(backend contract.BackendConnection, kind domain.SessionKind, address string,
	self *domain.Participant, dispatcher contract.Dispatcher, log *slog.Logger, opts Options) (*ProtocolSession, error) {
	if address == "" {
		return nil, fmt.Errorf("%w: empty %s session address", errors.ErrInvalidAddressing, kind)
	}
	s := newProtocolSession(address, kind, self, dispatcher, log, opts)
	s.backend = backend
	if kind == domain.PrivateChat {
		s.participants.Resolve(domain.ParticipantID(address), "")
	}
	s.start = s.requestChannel
	return s, nil
}

// AcceptProtocolSession wraps a channel signaled by the backend. The channel
// already exists, so negotiation starts at the capability stage.
func AcceptProtocolSession(channel contract.TextChannel, kind domain.SessionKind,
	self *domain.Participant, dispatcher contract.Dispatcher, log *slog.Logger, opts Options) (*ProtocolSession, error) {
	if channel == nil || channel.TargetID() == "" {
		return nil, fmt.Errorf("%w: incoming channel has no target", errors.ErrInvalidAddressing)
	}
	s := newProtocolSession(channel.TargetID(), kind, self, dispatcher, log, opts)
	s.channel = channel
	s.stage = stageAwaitCapabilities
	if initiator := channel.InitiatorID(); initiator != "" && domain.ParticipantID(initiator) != self.ID() {
		s.participants.Resolve(domain.ParticipantID(initiator), "")
	}
	s.start = s.awaitCapabilities
	return s, nil
}

func newProtocolSession(id string, kind domain.SessionKind, self *domain.Participant,
	dispatcher contract.Dispatcher, log *slog.Logger, opts Options) *ProtocolSession {
	return &ProtocolSession{
		core:           newCore(id, kind, self, log, opts),
		dispatcher:     dispatcher,
		pendingTimeout: opts.pendingTimeout(),
	}
}

// Start posts the first negotiation stage. The owner registers and
// announces the session before starting it.
func (s *ProtocolSession) Start() {
	s.startOnce.Do(func() { s.post(s.start) })
}

func (s *ProtocolSession) Variant() Variant {
	return VariantProtocol
}

// Send appends the message to history and hands it to the channel.
// Delivery failures are reported as MessageSendFailed.
func (s *ProtocolSession) Send(text string) error {
	s.mu.Lock()
	if s.state != domain.SessionReady {
		err := s.notReadyLocked()
		s.mu.Unlock()
		return err
	}
	message := s.appendLocalLocked(text)
	channel := s.channel
	s.sending++
	s.mu.Unlock()

	defer s.doneSending(channel)
	s.publish(event.MessageSent{SessionID: s.id, Message: message})
	channel.Send(text, func(err error) {
		if err == nil {
			return
		}
		s.post(func() {
			s.log.Warn("Message delivery failed", "message", message.ID, "error", err)
			s.publish(event.MessageSendFailed{SessionID: s.id, MessageID: message.ID, Err: err})
		})
	})
	return nil
}

// doneSending releases the channel when the session was torn down while
// this was the last Send using it.
func (s *ProtocolSession) doneSending(channel contract.TextChannel) {
	s.mu.Lock()
	s.sending--
	release := s.sending == 0 && s.releaseDeferred
	if release {
		s.releaseDeferred = false
	}
	s.mu.Unlock()

	if release {
		s.releaseChannel(channel)
	}
}

// Close requests the channel teardown and moves the session to Closed.
// It is safe during negotiation and a no-op on a terminal session.
func (s *ProtocolSession) Close() error {
	s.mu.Lock()
	if s.state.Terminal() {
		s.mu.Unlock()
		return nil
	}
	s.transitionLocked(domain.SessionClosed, nil)
	channel := s.takeChannelLocked()
	release := s.detachLocked()
	s.mu.Unlock()

	release()
	if channel != nil {
		s.releaseChannel(channel)
	}
	s.publish(event.SessionClosed{SessionID: s.id})
	return nil
}

// Invalidate applies a teardown decided by the backend: a graceful one
// closes the session, anything else moves it to Error.
func (s *ProtocolSession) Invalidate(reason error, graceful bool) {
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
	release := s.detachLocked()
	s.mu.Unlock()

	release()
	s.log.Warn("Session invalidated by backend", "graceful", graceful, "reason", reason)
	s.publish(s.terminalEvent(to, cause))
}

func invalidation(reason error) error {
	if reason == nil {
		return errors.ErrInvalidated
	}
	return fmt.Errorf("%w: %v", errors.ErrInvalidated, reason)
}

// enter moves the negotiation to the next stage unless the session left
// Initializing meanwhile.
func (s *ProtocolSession) enter(next stage) (contract.TextChannel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.SessionInitializing {
		s.log.Debug("Negotiation abandoned", "stage", next.String(), "state", s.state.String())
		return nil, false
	}
	s.stage = next
	s.log.Debug("Negotiation stage", "stage", next.String())
	return s.channel, true
}

func (s *ProtocolSession) requestChannel() {
	if _, ok := s.enter(stageRequestChannel); !ok {
		return
	}
	done := func(channel contract.TextChannel, err error) {
		s.post(func() { s.onChannel(channel, err) })
	}
	if s.kind == domain.PublicChannel {
		s.backend.JoinRoom(s.id, done)
		return
	}
	s.backend.RequestTextChannel(s.id, done)
}

func (s *ProtocolSession) onChannel(channel contract.TextChannel, err error) {
	s.mu.Lock()
	if s.state != domain.SessionInitializing {
		s.mu.Unlock()
		if channel != nil {
			s.releaseChannel(channel)
		}
		return
	}
	if err == nil && channel == nil {
		err = fmt.Errorf("backend returned no channel")
	}
	if err == nil {
		s.channel = channel
	}
	s.mu.Unlock()

	if err != nil {
		if channel != nil {
			s.releaseChannel(channel)
		}
		s.fail(fmt.Errorf("%w: text channel request: %v", errors.ErrNegotiationFailed, err))
		return
	}
	s.awaitCapabilities()
}

func (s *ProtocolSession) awaitCapabilities() {
	channel, ok := s.enter(stageAwaitCapabilities)
	if !ok {
		return
	}
	channel.BecomeReady(requiredFeatures, func(err error) {
		s.post(func() { s.onCapabilities(err) })
	})
}

func (s *ProtocolSession) onCapabilities(err error) {
	if err != nil {
		s.fail(fmt.Errorf("%w: channel capabilities: %v", errors.ErrNegotiationFailed, err))
		return
	}
	s.subscribeLive()
}

func (s *ProtocolSession) subscribeLive() {
	channel, ok := s.enter(stageSubscribeLive)
	if !ok {
		return
	}
	unsubscribe := channel.Subscribe(channelObserver{session: s})

	s.mu.Lock()
	if s.state != domain.SessionInitializing {
		s.mu.Unlock()
		unsubscribe()
		return
	}
	s.unsubscribe = unsubscribe
	s.mu.Unlock()
	s.drainPending()
}

// drainPending is the one stage blocking the owner loop, bounded by
// pendingTimeout, so that pending messages are in history before Ready.
func (s *ProtocolSession) drainPending() {
	channel, ok := s.enter(stageDrainPending)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.pendingTimeout)
	defer cancel()

	s.mu.Lock()
	if s.state != domain.SessionInitializing {
		s.mu.Unlock()
		return
	}
	s.cancelDrain = cancel
	s.mu.Unlock()

	pending, err := channel.ListPendingMessages(ctx)

	s.mu.Lock()
	s.cancelDrain = nil
	s.mu.Unlock()

	switch {
	case ctx.Err() == context.DeadlineExceeded:
		s.fail(fmt.Errorf("%w after %s", errors.ErrNegotiationTimeout, s.pendingTimeout))
	case err != nil:
		s.fail(fmt.Errorf("%w: pending messages: %v", errors.ErrNegotiationFailed, err))
	default:
		s.becomeReady(pending)
	}
}

func (s *ProtocolSession) becomeReady(pending []contract.BackendMessage) {
	s.mu.Lock()
	if s.state != domain.SessionInitializing {
		s.mu.Unlock()
		return
	}
	events := make([]event.Event, 0, len(pending)+len(s.held)+1)
	for _, m := range pending {
		if evt, ok := s.receiveBackendLocked(m, domain.OriginPending); ok {
			events = append(events, evt)
		}
	}
	s.transitionLocked(domain.SessionReady, nil)
	s.stage = stageReady
	events = append(events, event.SessionReady{SessionID: s.id})
	for _, m := range s.held {
		if evt, ok := s.receiveBackendLocked(m, domain.OriginLive); ok {
			events = append(events, evt)
		}
	}
	held := len(s.held)
	s.held = nil
	s.mu.Unlock()

	s.log.Info("Session ready", "pending", len(pending), "held", held)
	s.publish(events...)
}

func (s *ProtocolSession) onLiveMessage(m contract.BackendMessage) {
	s.mu.Lock()
	switch s.state {
	case domain.SessionInitializing:
		s.held = append(s.held, m)
		s.mu.Unlock()
	case domain.SessionReady:
		evt, ok := s.receiveBackendLocked(m, domain.OriginLive)
		s.mu.Unlock()
		if ok {
			s.publish(evt)
		}
	default:
		s.mu.Unlock()
		s.log.Debug("Message dropped on terminal session", "backend_id", m.ID)
	}
}

func (s *ProtocolSession) onParticipantRemoved(id string) {
	s.mu.Lock()
	if s.state.Terminal() {
		s.mu.Unlock()
		return
	}
	evt, ok := s.removeParticipantLocked(domain.ParticipantID(id))
	s.mu.Unlock()
	if ok {
		s.publish(evt)
	}
}

func (s *ProtocolSession) receiveBackendLocked(m contract.BackendMessage, origin domain.Origin) (event.MessageReceived, bool) {
	return s.receiveLocked(domain.ParticipantID(m.SenderID), m.SenderName, m.Text, m.ID, m.Timestamp, origin)
}

func (s *ProtocolSession) fail(cause error) {
	s.mu.Lock()
	if s.state.Terminal() {
		s.mu.Unlock()
		return
	}
	failedAt := s.stage
	s.transitionLocked(domain.SessionError, cause)
	channel := s.takeChannelLocked()
	release := s.detachLocked()
	s.held = nil
	s.mu.Unlock()

	release()
	s.log.Error("Session failed", "stage", failedAt.String(), "error", cause)
	if channel != nil {
		s.releaseChannel(channel)
	}
	s.publish(event.SessionFailed{SessionID: s.id, Err: cause})
}

// detachLocked takes the live subscription and the in-flight enumeration
// out of the session. The returned func releases them and must be called
// after mu is released. Caller holds mu.
func (s *ProtocolSession) detachLocked() func() {
	unsubscribe, cancelDrain := s.unsubscribe, s.cancelDrain
	s.unsubscribe, s.cancelDrain = nil, nil
	return func() {
		if cancelDrain != nil {
			cancelDrain()
		}
		if unsubscribe != nil {
			unsubscribe()
		}
	}
}

// takeChannelLocked returns the channel to release on teardown, or nil when
// a Send is still handing a message to it. Caller holds mu.
func (s *ProtocolSession) takeChannelLocked() contract.TextChannel {
	if s.sending > 0 {
		s.releaseDeferred = s.channel != nil
		return nil
	}
	return s.channel
}

func (s *ProtocolSession) releaseChannel(channel contract.TextChannel) {
	channel.RequestClose(func(err error) {
		if err != nil {
			s.log.Warn("Channel close request failed", "error", err)
		}
	})
}

func (s *ProtocolSession) post(task func()) {
	if !s.dispatcher.Post(task) {
		s.log.Debug("Owner loop stopped, callback dropped")
	}
}

// channelObserver hops every backend notification onto the owner loop.
type channelObserver struct {
	session *ProtocolSession
}

func (o channelObserver) MessageReceived(message contract.BackendMessage) {
	o.session.post(func() { o.session.onLiveMessage(message) })
}

func (o channelObserver) ParticipantRemoved(participantID string) {
	o.session.post(func() { o.session.onParticipantRemoved(participantID) })
}

func (o channelObserver) Invalidated(reason error, graceful bool) {
	o.session.post(func() { o.session.Invalidate(reason, graceful) })
}
