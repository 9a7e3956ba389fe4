// Package domain contains core concepts of the communication system.
// This file defines Participant identities and the per-session set that
// deduplicates them.
// No runtime, network, or UI logic should be added here.
package domain

import "sync"

type ParticipantID string

// Participant is a protocol-scoped identity inside one session.
// It is shared by reference between the session's participant set and the
// messages it authored, so a name resolved late shows up everywhere at once.
type Participant struct {
	id   ParticipantID
	mu   sync.RWMutex
	name string
}

func NewParticipant(id ParticipantID, name string) *Participant {
	return &Participant{id: id, name: name}
}

func (p *Participant) ID() ParticipantID {
	return p.id
}

func (p *Participant) Name() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.name
}

// DisplayName returns the name, or the id while the name is still unknown.
func (p *Participant) DisplayName() string {
	if name := p.Name(); name != "" {
		return name
	}
	return string(p.id)
}

// backfill sets the name only when it is still unknown.
func (p *Participant) backfill(name string) bool {
	if name == "" {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.name != "" {
		return false
	}
	p.name = name
	return true
}

// ParticipantSet keeps participants in arrival order, keyed by id.
// Departed participants are remembered so that an id coming back maps to
// the identity its earlier messages reference.
// It is not safe for concurrent use; the owning session serializes access.
type ParticipantSet struct {
	order []*Participant
	byID  map[ParticipantID]*Participant
	left  map[ParticipantID]*Participant
}

func NewParticipantSet() *ParticipantSet {
	return &ParticipantSet{
		byID: make(map[ParticipantID]*Participant),
		left: make(map[ParticipantID]*Participant),
	}
}

// Resolve returns the participant registered under id, creating it when the
// id is new and reviving it when it had left. An empty name on a known
// participant is back-filled with name.
// The boolean reports whether the participant joined the set.
func (s *ParticipantSet) Resolve(id ParticipantID, name string) (*Participant, bool) {
	if p, ok := s.byID[id]; ok {
		p.backfill(name)
		return p, false
	}
	p, ok := s.left[id]
	if ok {
		delete(s.left, id)
		p.backfill(name)
	} else {
		p = NewParticipant(id, name)
	}
	s.byID[id] = p
	s.order = append(s.order, p)
	return p, true
}

func (s *ParticipantSet) Find(id ParticipantID) (*Participant, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Remove drops the participant from the set. Messages it authored keep
// their reference.
func (s *ParticipantSet) Remove(id ParticipantID) (*Participant, bool) {
	p, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	delete(s.byID, id)
	s.left[id] = p
	for i, candidate := range s.order {
		if candidate == p {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return p, true
}

// All returns a copy of the participant list in arrival order.
func (s *ParticipantSet) All() []*Participant {
	res := make([]*Participant, len(s.order))
	copy(res, s.order)
	return res
}

func (s *ParticipantSet) Len() int {
	return len(s.order)
}
