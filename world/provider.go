// Package world adapts the virtual world's native chat and instant message
// transport to the provider, connection and session model. The world has
// no connection manager, so its provider is ready as soon as it exists.
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

	"github.com/samber/lo"
)

const (
	ProviderName = "world"
	Protocol     = "opensim"
)

type Provider struct {
	transport  contract.WorldTransport
	dispatcher contract.Dispatcher
	log        *slog.Logger
	fanout     *runtime.Fanout
	opts       session.Options

	mu          sync.Mutex
	state       domain.ProviderState
	connections []*Connection
}

// NewProvider returns a Ready provider; its observers hear about it
// before NewProvider returns.
func NewProvider(transport contract.WorldTransport, dispatcher contract.Dispatcher, log *slog.Logger, opts session.Options) *Provider {
	log = log.With("provider", ProviderName)
	p := &Provider{
		transport:  transport,
		dispatcher: dispatcher,
		log:        log,
		fanout:     runtime.NewFanout(log, opts.SinkTimeout),
		opts:       opts,
		state:      domain.ProviderReady,
	}
	for _, sink := range opts.Observers {
		p.fanout.Subscribe(sink)
	}
	p.fanout.Publish(event.ProviderReady{Provider: ProviderName})
	p.fanout.Publish(event.ProtocolListUpdated{Provider: ProviderName, Protocols: []string{Protocol}})
	return p
}

func (p *Provider) Name() string {
	return ProviderName
}

func (p *Provider) State() domain.ProviderState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Err is always nil: the world provider cannot fail.
func (p *Provider) Err() error {
	return nil
}

func (p *Provider) Subscribe(sink contract.EventSink) func() {
	return p.fanout.Subscribe(sink)
}

func (p *Provider) SupportedProtocols() []string {
	if p.State() != domain.ProviderReady {
		return nil
	}
	return []string{Protocol}
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

// OpenConnection binds a connection to the transport, which must be
// connected already.
func (p *Provider) OpenConnection(credentials domain.Credentials) (contract.Connection, error) {
	if state := p.State(); state != domain.ProviderReady {
		return nil, fmt.Errorf("%w: provider %s is %s", errors.ErrNotReady, ProviderName, state)
	}
	if err := credentials.Validate(); err != nil {
		return nil, err
	}
	if credentials.Protocol != Protocol {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedProtocol, credentials.Protocol)
	}
	if !p.transport.IsConnected() {
		return nil, fmt.Errorf("%w: world transport disconnected", errors.ErrBackendUnavailable)
	}
	conn := NewConnection(p.transport, credentials, p.dispatcher, p.log, p.opts)

	p.mu.Lock()
	if p.state != domain.ProviderReady {
		p.mu.Unlock()
		return nil, fmt.Errorf("%w: provider %s disposed", errors.ErrNotReady, ProviderName)
	}
	p.pruneLocked()
	p.connections = append(p.connections, conn)
	p.mu.Unlock()

	p.log.Info("Connection opened", "connection", conn.ID(), "credentials", credentials.String())
	conn.Start()
	return conn, nil
}

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
		_ = c.Close()
	}
	p.log.Info("Provider disposed", "connections", len(connections))
	return nil
}
