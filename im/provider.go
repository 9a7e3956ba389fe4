// Package im adapts a protocol backend (an instant messaging stack with a
// process-wide connection manager) to the provider, connection and session
// model. Every backend callback is posted to the dispatcher before it
// touches any state.
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

	"github.com/samber/lo"
)

// Provider owns the backend connection manager and every connection opened
// through it. It negotiates the manager once; a failure is terminal.
type Provider struct {
	manager    contract.ConnectionManager
	dispatcher contract.Dispatcher
	log        *slog.Logger
	fanout     *runtime.Fanout
	opts       session.Options

	mu          sync.Mutex
	state       domain.ProviderState
	err         error
	protocols   []string
	connections []*Connection
}

// NewProvider returns an Initializing provider and posts the manager
// negotiation. Observers in opts are subscribed to the provider and to
// everything it creates.
func NewProvider(manager contract.ConnectionManager, dispatcher contract.Dispatcher, log *slog.Logger, opts session.Options) *Provider {
	log = log.With("provider", manager.Name())
	p := &Provider{
		manager:    manager,
		dispatcher: dispatcher,
		log:        log,
		fanout:     runtime.NewFanout(log, opts.SinkTimeout),
		opts:       opts,
		state:      domain.ProviderInitializing,
	}
	for _, sink := range opts.Observers {
		p.fanout.Subscribe(sink)
	}
	if !dispatcher.Post(p.negotiate) {
		p.log.Warn("Owner loop stopped before provider negotiation")
	}
	return p
}

func (p *Provider) Name() string {
	return p.manager.Name()
}

func (p *Provider) State() domain.ProviderState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Provider) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *Provider) Subscribe(sink contract.EventSink) func() {
	return p.fanout.Subscribe(sink)
}

// SupportedProtocols is empty until the provider is Ready.
func (p *Provider) SupportedProtocols() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != domain.ProviderReady {
		return nil
	}
	return append([]string(nil), p.protocols...)
}

func (p *Provider) Connections() []contract.Connection {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pruneLocked()
	return lo.Map(p.connections, func(c *Connection, _ int) contract.Connection { return c })
}

// pruneLocked drops closed and failed connections. Caller holds mu.
func (p *Provider) pruneLocked() {
	p.connections = lo.Reject(p.connections, func(c *Connection, _ int) bool {
		return c.State().Terminal()
	})
}

// OpenConnection creates a connection bound to the manager. The connection
// is returned before it is ready and negotiates on the dispatcher.
func (p *Provider) OpenConnection(credentials domain.Credentials) (contract.Connection, error) {
	p.mu.Lock()
	if p.state != domain.ProviderReady {
		err := fmt.Errorf("%w: provider %s is %s", errors.ErrNotReady, p.manager.Name(), p.state)
		p.mu.Unlock()
		return nil, err
	}
	supported := lo.Contains(p.protocols, credentials.Protocol)
	p.mu.Unlock()

	if err := credentials.Validate(); err != nil {
		return nil, err
	}
	if !supported {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedProtocol, credentials.Protocol)
	}
	backend, err := p.manager.NewConnection(credentials)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrBackendUnavailable, err)
	}
	conn := NewConnection(backend, credentials, p.dispatcher, p.log, p.opts)

	p.mu.Lock()
	if p.state != domain.ProviderReady {
		p.mu.Unlock()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: provider %s disposed", errors.ErrNotReady, p.manager.Name())
	}
	p.pruneLocked()
	p.connections = append(p.connections, conn)
	p.mu.Unlock()

	p.log.Info("Connection opened", "connection", conn.ID(), "credentials", credentials.String())
	conn.Start()
	return conn, nil
}

// Dispose closes every connection and ends the provider. It is idempotent
// and stops a negotiation still in flight.
func (p *Provider) Dispose() error {
	p.mu.Lock()
	if !p.state.CanTransition(domain.ProviderClosed) {
		p.mu.Unlock()
		return nil
	}
	p.state = domain.ProviderClosed
	connections := p.connections
	p.connections = nil
	p.mu.Unlock()

	for _, c := range connections {
		if err := c.Close(); err != nil {
			p.log.Warn("Connection close failed", "connection", c.ID(), "error", err)
		}
	}
	p.log.Info("Provider disposed", "connections", len(connections))
	return nil
}

func (p *Provider) negotiate() {
	if p.State() != domain.ProviderInitializing {
		return
	}
	p.manager.BecomeReady(func(err error) {
		p.dispatcher.Post(func() { p.onReady(err) })
	})
}

func (p *Provider) onReady(err error) {
	if err != nil {
		p.fail(fmt.Errorf("%w: %s manager: %v", errors.ErrNegotiationFailed, p.manager.Name(), err))
		return
	}
	if p.State() != domain.ProviderInitializing {
		return
	}
	protocols := lo.Uniq(p.manager.Protocols())

	p.mu.Lock()
	if !p.state.CanTransition(domain.ProviderReady) {
		p.mu.Unlock()
		return
	}
	p.state = domain.ProviderReady
	p.protocols = protocols
	p.mu.Unlock()

	p.log.Info("Provider ready", "protocols", protocols)
	p.fanout.Publish(event.ProviderReady{Provider: p.manager.Name()})
	p.fanout.Publish(event.ProtocolListUpdated{Provider: p.manager.Name(), Protocols: append([]string(nil), protocols...)})
}

func (p *Provider) fail(cause error) {
	p.mu.Lock()
	if !p.state.CanTransition(domain.ProviderError) {
		p.mu.Unlock()
		return
	}
	p.state = domain.ProviderError
	p.err = cause
	p.mu.Unlock()

	p.log.Error("Provider failed", "error", cause)
	p.fanout.Publish(event.ProviderFailed{Provider: p.manager.Name(), Err: cause})
}
