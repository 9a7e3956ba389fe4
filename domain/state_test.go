package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionState_Transitions(t *testing.T) {
	req := require.New(t)

	req.True(SessionInitializing.CanTransition(SessionReady))
	req.True(SessionInitializing.CanTransition(SessionError))
	req.True(SessionInitializing.CanTransition(SessionClosed))
	req.True(SessionReady.CanTransition(SessionClosed))
	req.True(SessionReady.CanTransition(SessionError))

	req.False(SessionReady.CanTransition(SessionInitializing))
	for _, to := range []SessionState{SessionInitializing, SessionReady, SessionClosed, SessionError} {
		req.False(SessionClosed.CanTransition(to), "closed -> %s", to)
		req.False(SessionError.CanTransition(to), "error -> %s", to)
	}
	req.True(SessionClosed.Terminal())
	req.True(SessionError.Terminal())
	req.False(SessionReady.Terminal())
}

func TestConnectionState_Transitions(t *testing.T) {
	req := require.New(t)

	req.True(ConnectionInitializing.CanTransition(ConnectionReady))
	req.True(ConnectionReady.CanTransition(ConnectionError))
	req.False(ConnectionError.CanTransition(ConnectionReady))
	req.False(ConnectionClosed.CanTransition(ConnectionReady))
}

func TestProviderState_Error_Is_Terminal(t *testing.T) {
	req := require.New(t)

	req.True(ProviderInitializing.CanTransition(ProviderError))
	req.False(ProviderError.CanTransition(ProviderReady))
	req.False(ProviderError.CanTransition(ProviderInitializing))
	req.True(ProviderReady.CanTransition(ProviderClosed))
}
