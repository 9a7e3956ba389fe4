package loopback

import (
	"comms/contract"
	"fmt"
	"sync"
)

// Sent is one chat line or instant message handed to the world.
type Sent struct {
	Channel string
	AgentID string
	Text    string
}

// World simulates the virtual world transport of a logged in avatar.
type World struct {
	observers observers[contract.WorldObserver]

	mu        sync.Mutex
	connected bool
	sendErr   error
	echo      bool
	sent      []Sent
}

func NewWorld(connected bool) *World {
	return &World{connected: connected}
}

func (w *World) IsConnected() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.connected
}

// Login marks the avatar as connected again.
func (w *World) Login() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.connected = true
}

// FailSends makes every later send report err.
func (w *World) FailSends(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sendErr = err
}

// Echo makes agents answer every instant message with the same text.
func (w *World) Echo(enabled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.echo = enabled
}

func (w *World) SendChat(channel string, text string) error {
	return w.record(Sent{Channel: channel, Text: text})
}

func (w *World) SendInstantMessage(agentID string, text string) error {
	if err := w.record(Sent{AgentID: agentID, Text: text}); err != nil {
		return err
	}
	w.mu.Lock()
	echo := w.echo
	w.mu.Unlock()
	if echo {
		w.InstantMessage(agentID, agentID, text)
	}
	return nil
}

func (w *World) Subscribe(observer contract.WorldObserver) func() {
	return w.observers.add(observer)
}

// Observers returns how many observers are subscribed.
func (w *World) Observers() int {
	return w.observers.len()
}

// Sent returns everything handed to the world so far.
func (w *World) Sent() []Sent {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Sent(nil), w.sent...)
}

func (w *World) ChatFromAgent(agentID, name, text string) {
	for _, o := range w.observers.snapshot() {
		o.ChatFromAgent(agentID, name, text)
	}
}

func (w *World) ChatFromServer(text string) {
	for _, o := range w.observers.snapshot() {
		o.ChatFromServer(text)
	}
}

func (w *World) ChatFromObject(objectID, name, text string) {
	for _, o := range w.observers.snapshot() {
		o.ChatFromObject(objectID, name, text)
	}
}

func (w *World) InstantMessage(agentID, name, text string) {
	for _, o := range w.observers.snapshot() {
		o.InstantMessage(agentID, name, text)
	}
}

// Drop disconnects the avatar and tells every observer.
func (w *World) Drop(reason error) {
	w.mu.Lock()
	w.connected = false
	w.mu.Unlock()
	for _, o := range w.observers.snapshot() {
		o.Disconnected(reason)
	}
}

func (w *World) record(s Sent) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.connected {
		return fmt.Errorf("avatar logged out")
	}
	if w.sendErr != nil {
		return w.sendErr
	}
	w.sent = append(w.sent, s)
	return nil
}
