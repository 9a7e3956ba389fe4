package domain

import "github.com/samber/lo"

type SessionKind int

const (
	PrivateChat SessionKind = iota
	PublicChannel
)

// PublicChannelID is the only public channel the world backend can address.
const PublicChannelID = "0"

func (k SessionKind) String() string {
	switch k {
	case PrivateChat:
		return "private"
	case PublicChannel:
		return "public"
	default:
		return "unknown"
	}
}

type SessionState int

const (
	SessionInitializing SessionState = iota
	SessionReady
	SessionClosed
	SessionError
)

var sessionTransitions = map[SessionState][]SessionState{
	SessionInitializing: {SessionReady, SessionError, SessionClosed},
	SessionReady:        {SessionClosed, SessionError},
}

func (s SessionState) String() string {
	switch s {
	case SessionInitializing:
		return "initializing"
	case SessionReady:
		return "ready"
	case SessionClosed:
		return "closed"
	case SessionError:
		return "error"
	default:
		return "unknown"
	}
}

func (s SessionState) CanTransition(to SessionState) bool {
	return lo.Contains(sessionTransitions[s], to)
}

func (s SessionState) Terminal() bool {
	return s == SessionClosed || s == SessionError
}

type ConnectionState int

const (
	ConnectionInitializing ConnectionState = iota
	ConnectionReady
	ConnectionClosed
	ConnectionError
)

var connectionTransitions = map[ConnectionState][]ConnectionState{
	ConnectionInitializing: {ConnectionReady, ConnectionError, ConnectionClosed},
	ConnectionReady:        {ConnectionClosed, ConnectionError},
}

func (s ConnectionState) String() string {
	switch s {
	case ConnectionInitializing:
		return "initializing"
	case ConnectionReady:
		return "ready"
	case ConnectionClosed:
		return "closed"
	case ConnectionError:
		return "error"
	default:
		return "unknown"
	}
}

func (s ConnectionState) CanTransition(to ConnectionState) bool {
	return lo.Contains(connectionTransitions[s], to)
}

func (s ConnectionState) Terminal() bool {
	return s == ConnectionClosed || s == ConnectionError
}

type ProviderState int

const (
	ProviderInitializing ProviderState = iota
	ProviderReady
	ProviderError
	// ProviderClosed is reached on disposal.
	ProviderClosed
)

// A failed provider stays failed; a new instance is required to retry.
var providerTransitions = map[ProviderState][]ProviderState{
	ProviderInitializing: {ProviderReady, ProviderError, ProviderClosed},
	ProviderReady:        {ProviderClosed},
}

func (s ProviderState) String() string {
	switch s {
	case ProviderInitializing:
		return "initializing"
	case ProviderReady:
		return "ready"
	case ProviderError:
		return "error"
	case ProviderClosed:
		return "closed"
	default:
		return "unknown"
	}
}

func (s ProviderState) CanTransition(to ProviderState) bool {
	return lo.Contains(providerTransitions[s], to)
}
