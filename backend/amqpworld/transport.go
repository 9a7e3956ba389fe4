// Package amqpworld carries the virtual world's chat and instant messages
// over a RabbitMQ topic exchange, bridged to the simulator by a gateway.
//
// Outgoing traffic is published with routing keys world.chat.<channel> and
// world.im.<agent>. Traffic from the world arrives on an exclusive queue
// bound to world.inbound.#. Payloads are JSON envelopes.
package amqpworld

import (
	"comms/contract"
	"comms/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/lo"
)

const (
	DefaultExchange    = "world"
	DefaultDialTimeout = 5 * time.Second
	publishTimeout     = 5 * time.Second
	inboundBinding     = "world.inbound.#"
)

const (
	KindChat = "chat"
	KindIM   = "im"

	SourceAgent  = "agent"
	SourceServer = "server"
	SourceObject = "object"
)

type Config struct {
	URL         string
	Exchange    string
	DialTimeout time.Duration
	// Avatar is the agent id stamped on outgoing envelopes.
	Avatar string
}

// Envelope is the JSON payload exchanged with the world gateway.
type Envelope struct {
	Kind     string    `json:"kind"`
	Source   string    `json:"source,omitempty"`
	SenderID string    `json:"sender_id"`
	Name     string    `json:"name,omitempty"`
	Channel  string    `json:"channel,omitempty"`
	AgentID  string    `json:"agent_id,omitempty"`
	Text     string    `json:"text"`
	At       time.Time `json:"at"`
}

type subscription struct {
	id       int
	observer contract.WorldObserver
}

// Transport implements contract.WorldTransport. Run must be running for
// inbound traffic to reach observers. A lost broker connection is
// reported once through Disconnected; the transport does not reconnect.
type Transport struct {
	cfg Config
	log *slog.Logger

	mu        sync.Mutex
	conn      *amqp.Connection
	ch        *amqp.Channel
	queue     string
	connected bool
	nextID    int
	subs      []subscription
}

// Dial connects to the broker, declares the exchange and binds the
// inbound queue.
func Dial(cfg Config, log *slog.Logger) (*Transport, error) {
	t := newTransport(cfg, log)
	conn, err := amqp.DialConfig(t.cfg.URL, amqp.Config{Dial: amqp.DefaultDial(t.cfg.DialTimeout)})
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", errors.ErrBackendUnavailable, t.cfg.Exchange, err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: channel: %v", errors.ErrBackendUnavailable, err)
	}
	if err := ch.ExchangeDeclare(t.cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, err
	}
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := ch.QueueBind(q.Name, inboundBinding, t.cfg.Exchange, false, nil); err != nil {
		_ = conn.Close()
		return nil, err
	}
	t.conn, t.ch, t.queue, t.connected = conn, ch, q.Name, true
	t.log.Info("World transport connected", "exchange", t.cfg.Exchange, "queue", q.Name)
	return t, nil
}

func newTransport(cfg Config, log *slog.Logger) *Transport {
	if cfg.Exchange == "" {
		cfg.Exchange = DefaultExchange
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = DefaultDialTimeout
	}
	return &Transport{cfg: cfg, log: log.With("transport", "amqp")}
}

func (t *Transport) IsConnected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connected
}

func (t *Transport) SendChat(channel string, text string) error {
	return t.publish("world.chat."+channel, Envelope{
		Kind:     KindChat,
		SenderID: t.cfg.Avatar,
		Channel:  channel,
		Text:     text,
		At:       time.Now().UTC(),
	})
}

func (t *Transport) SendInstantMessage(agentID string, text string) error {
	return t.publish("world.im."+agentID, Envelope{
		Kind:     KindIM,
		SenderID: t.cfg.Avatar,
		AgentID:  agentID,
		Text:     text,
		At:       time.Now().UTC(),
	})
}

func (t *Transport) Subscribe(observer contract.WorldObserver) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	id := t.nextID
	t.subs = append(t.subs, subscription{id: id, observer: observer})
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.subs = lo.Reject(t.subs, func(s subscription, _ int) bool { return s.id == id })
	}
}

// Run consumes the inbound queue until ctx ends or the broker goes away.
// Losing the broker is not an error for the supervisor: there is nothing
// to restart.
func (t *Transport) Run(ctx context.Context) error {
	t.mu.Lock()
	conn, ch, queue := t.conn, t.ch, t.queue
	t.mu.Unlock()
	if conn == nil || ch == nil {
		return fmt.Errorf("%w: transport not dialed", errors.ErrBackendUnavailable)
	}
	deliveries, err := ch.ConsumeWithContext(ctx, queue, "", true, true, false, false, nil)
	if err != nil {
		t.disconnected(err)
		return nil
	}
	closed := conn.NotifyClose(make(chan *amqp.Error, 1))
	for {
		select {
		case <-ctx.Done():
			t.close()
			return nil
		case amqpErr := <-closed:
			t.disconnected(fmt.Errorf("broker connection closed: %v", amqpErr))
			return nil
		case d, ok := <-deliveries:
			if !ok {
				t.disconnected(fmt.Errorf("inbound queue closed"))
				return nil
			}
			t.dispatch(d)
		}
	}
}

// Close releases the broker connection without notifying observers.
func (t *Transport) Close() error {
	t.close()
	return nil
}

func (t *Transport) publish(key string, envelope Envelope) error {
	t.mu.Lock()
	ch, connected := t.ch, t.connected
	t.mu.Unlock()
	if !connected || ch == nil {
		return fmt.Errorf("%w: world transport disconnected", errors.ErrBackendUnavailable)
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	return ch.PublishWithContext(ctx, t.cfg.Exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		MessageId:   uuid.NewString(),
		Timestamp:   envelope.At,
		Body:        body,
	})
}

// dispatch decodes one inbound envelope and hands it to the observers.
func (t *Transport) dispatch(d amqp.Delivery) {
	var envelope Envelope
	if err := json.Unmarshal(d.Body, &envelope); err != nil {
		t.log.Warn("Inbound envelope dropped", "key", d.RoutingKey, "error", err)
		return
	}
	notify, ok := t.route(envelope)
	if !ok {
		t.log.Warn("Inbound envelope not routable", "key", d.RoutingKey, "kind", envelope.Kind, "source", envelope.Source)
		return
	}
	for _, o := range t.observers() {
		notify(o)
	}
}

func (t *Transport) route(e Envelope) (func(contract.WorldObserver), bool) {
	switch {
	case e.Kind == KindIM:
		return func(o contract.WorldObserver) { o.InstantMessage(e.SenderID, e.Name, e.Text) }, true
	case e.Kind == KindChat && e.Source == SourceServer:
		return func(o contract.WorldObserver) { o.ChatFromServer(e.Text) }, true
	case e.Kind == KindChat && e.Source == SourceObject:
		return func(o contract.WorldObserver) { o.ChatFromObject(e.SenderID, e.Name, e.Text) }, true
	case e.Kind == KindChat:
		return func(o contract.WorldObserver) { o.ChatFromAgent(e.SenderID, e.Name, e.Text) }, true
	default:
		return nil, false
	}
}

func (t *Transport) observers() []contract.WorldObserver {
	t.mu.Lock()
	defer t.mu.Unlock()
	return lo.Map(t.subs, func(s subscription, _ int) contract.WorldObserver { return s.observer })
}

func (t *Transport) disconnected(reason error) {
	t.mu.Lock()
	was := t.connected
	t.connected = false
	t.mu.Unlock()
	if !was {
		return
	}
	t.log.Error("World transport disconnected", "error", reason)
	for _, o := range t.observers() {
		o.Disconnected(reason)
	}
}

func (t *Transport) close() {
	t.mu.Lock()
	conn := t.conn
	t.connected = false
	t.conn, t.ch = nil, nil
	t.mu.Unlock()
	if conn != nil {
		if err := conn.Close(); err != nil {
			t.log.Debug("Broker connection close", "error", err)
		}
	}
}
