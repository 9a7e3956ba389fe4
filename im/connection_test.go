package im

import (
	"comms/contract"
	"comms/domain"
	"comms/domain/event"
	"comms/errors"
	"comms/mocks"
	"comms/runtime"
	"comms/session"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// readyChannel expects a channel to negotiate with no pending message.
func readyChannel(channel *mocks.MockTextChannel, observer *contract.ChannelObserver) {
	channel.EXPECT().BecomeReady(gomock.Any(), gomock.Any()).
		Do(func(_ []contract.ChannelFeature, done func(error)) { done(nil) })
	channel.EXPECT().Subscribe(gomock.Any()).
		DoAndReturn(func(o contract.ChannelObserver) func() {
			*observer = o
			return func() {}
		})
	channel.EXPECT().ListPendingMessages(gomock.Any()).
		DoAndReturn(func(context.Context) ([]contract.BackendMessage, error) { return nil, nil })
}

// startedConnection returns a ready connection and the handlers it
// registered on the backend.
func startedConnection(t *testing.T, backend *mocks.MockBackendConnection, rec *mocks.Recorder) (
	*Connection, func(contract.TextChannel), func(error, bool)) {
	var incoming func(contract.TextChannel)
	var invalidated func(error, bool)
	backend.EXPECT().SelfID().Return("me@example.org").AnyTimes()
	backend.EXPECT().OnIncomingChannel(gomock.Any()).Do(func(h func(contract.TextChannel)) { incoming = h })
	backend.EXPECT().OnInvalidated(gomock.Any()).Do(func(h func(error, bool)) { invalidated = h })
	backend.EXPECT().Connect(gomock.Any()).Do(func(done func(error)) { done(nil) })

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	conn := NewConnection(backend, credentials(), runtime.InlineDispatcher{}, log,
		session.Options{Observers: []contract.EventSink{rec}})
	conn.Start()
	require.Equal(t, domain.ConnectionReady, conn.State())
	return conn, incoming, invalidated
}

func TestConnection_Connect_Failure(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackendConnection(ctrl)
	rec := &mocks.Recorder{}

	connectingBackend(backend, fmt.Errorf("auth rejected"))
	conn := NewConnection(backend, credentials(), runtime.InlineDispatcher{}, log,
		session.Options{Observers: []contract.EventSink{rec}})
	conn.Start()

	req.Equal(domain.ConnectionError, conn.State())
	req.ErrorIs(conn.Err(), errors.ErrNegotiationFailed)
	req.Len(mocks.EventsOf[event.ConnectionFailed](rec), 1)
	_, err := conn.OpenSession(domain.PrivateChat, "bob")
	req.ErrorIs(err, errors.ErrNotReady)
}

func TestConnection_OpenSession_Before_Ready(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackendConnection(ctrl)
	backend.EXPECT().SelfID().Return("me@example.org")

	conn := NewConnection(backend, credentials(), &mocks.StepDispatcher{}, log, session.Options{})

	_, err := conn.OpenSession(domain.PrivateChat, "bob")
	req.ErrorIs(err, errors.ErrNotReady)
	req.Empty(conn.Sessions())
}

func TestConnection_OpenSession_Reuses_A_Live_Session(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackendConnection(ctrl)
	channel := mocks.NewMockTextChannel(ctrl)
	rec := &mocks.Recorder{}
	var observer contract.ChannelObserver
	conn, _, _ := startedConnection(t, backend, rec)

	// Given a private session opened towards bob
	backend.EXPECT().RequestTextChannel("bob", gomock.Any()).
		Do(func(_ string, done func(contract.TextChannel, error)) { done(channel, nil) })
	readyChannel(channel, &observer)
	first, err := conn.OpenSession(domain.PrivateChat, "bob")
	req.NoError(err)
	req.Equal(domain.SessionReady, first.State())

	// When it is opened again
	second, err := conn.OpenSession(domain.PrivateChat, "bob")
	req.NoError(err)

	// Then the same session comes back and it was announced once
	req.Same(first, second)
	req.Len(conn.Sessions(), 1)
	opened := mocks.EventsOf[event.SessionOpened](rec)
	req.Len(opened, 1)
	req.False(opened[0].Inbound)
	req.Equal(conn.ID(), opened[0].ConnectionID)
}

func TestConnection_Closed_Sessions_Leave_The_Set(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackendConnection(ctrl)
	channel := mocks.NewMockTextChannel(ctrl)
	var observer contract.ChannelObserver
	conn, _, _ := startedConnection(t, backend, &mocks.Recorder{})

	backend.EXPECT().JoinRoom("lobby", gomock.Any()).
		Do(func(_ string, done func(contract.TextChannel, error)) { done(channel, nil) })
	readyChannel(channel, &observer)
	s, err := conn.OpenSession(domain.PublicChannel, "lobby")
	req.NoError(err)
	req.Len(conn.Sessions(), 1)

	channel.EXPECT().RequestClose(gomock.Any())
	req.NoError(s.Close())
	req.Empty(conn.Sessions())
}

func TestConnection_Accepts_Incoming_Channels(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackendConnection(ctrl)
	channel := mocks.NewMockTextChannel(ctrl)
	rec := &mocks.Recorder{}
	var observer contract.ChannelObserver
	conn, incoming, _ := startedConnection(t, backend, rec)

	// Given alice opening a chat
	channel.EXPECT().ID().Return("chan-1").AnyTimes()
	channel.EXPECT().TargetID().Return("alice").AnyTimes()
	channel.EXPECT().InitiatorID().Return("alice").AnyTimes()
	readyChannel(channel, &observer)

	// When the backend signals it
	incoming(channel)

	// Then an inbound private session is ready
	sessions := conn.Sessions()
	req.Len(sessions, 1)
	req.Equal("alice", sessions[0].ID())
	req.Equal(domain.SessionReady, sessions[0].State())
	opened := mocks.EventsOf[event.SessionOpened](rec)
	req.Len(opened, 1)
	req.True(opened[0].Inbound)

	// And a live message reaches it
	observer.MessageReceived(contract.BackendMessage{SenderID: "alice", SenderName: "Alice", Text: "ping"})
	req.Len(sessions[0].History(), 1)
}

func TestConnection_Abnormal_Invalidation_Fails_Sessions(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackendConnection(ctrl)
	channel := mocks.NewMockTextChannel(ctrl)
	rec := &mocks.Recorder{}
	var observer contract.ChannelObserver
	conn, _, invalidated := startedConnection(t, backend, rec)

	backend.EXPECT().RequestTextChannel("bob", gomock.Any()).
		Do(func(_ string, done func(contract.TextChannel, error)) { done(channel, nil) })
	readyChannel(channel, &observer)
	s, err := conn.OpenSession(domain.PrivateChat, "bob")
	req.NoError(err)

	// When the network is lost
	invalidated(fmt.Errorf("network unreachable"), false)

	// Then the connection and its session are in Error
	req.Equal(domain.ConnectionError, conn.State())
	req.ErrorIs(conn.Err(), errors.ErrInvalidated)
	req.Equal(domain.SessionError, s.State())
	req.ErrorIs(s.Err(), errors.ErrInvalidated)
	req.Len(mocks.EventsOf[event.ConnectionFailed](rec), 1)
	req.Len(mocks.EventsOf[event.SessionFailed](rec), 1)
	req.Empty(conn.Sessions())
}

func TestConnection_Graceful_Invalidation_Closes_Sessions(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackendConnection(ctrl)
	channel := mocks.NewMockTextChannel(ctrl)
	rec := &mocks.Recorder{}
	var observer contract.ChannelObserver
	conn, _, invalidated := startedConnection(t, backend, rec)

	backend.EXPECT().RequestTextChannel("bob", gomock.Any()).
		Do(func(_ string, done func(contract.TextChannel, error)) { done(channel, nil) })
	readyChannel(channel, &observer)
	s, err := conn.OpenSession(domain.PrivateChat, "bob")
	req.NoError(err)

	channel.EXPECT().RequestClose(gomock.Any())
	invalidated(nil, true)

	req.Equal(domain.ConnectionClosed, conn.State())
	req.Equal(domain.SessionClosed, s.State())
	req.Len(mocks.EventsOf[event.ConnectionClosed](rec), 1)
}

func TestConnection_Close_Cascades_Once(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackendConnection(ctrl)
	channel := mocks.NewMockTextChannel(ctrl)
	rec := &mocks.Recorder{}
	var observer contract.ChannelObserver
	conn, incoming, _ := startedConnection(t, backend, rec)

	backend.EXPECT().RequestTextChannel("bob", gomock.Any()).
		Do(func(_ string, done func(contract.TextChannel, error)) { done(channel, nil) })
	readyChannel(channel, &observer)
	s, err := conn.OpenSession(domain.PrivateChat, "bob")
	req.NoError(err)

	// When the connection is closed twice
	channel.EXPECT().RequestClose(gomock.Any())
	backend.EXPECT().Disconnect(gomock.Any()).Times(1)
	req.NoError(conn.Close())
	req.NoError(conn.Close())

	// Then its session is closed and the closing is announced once
	req.Equal(domain.SessionClosed, s.State())
	req.Len(mocks.EventsOf[event.ConnectionClosed](rec), 1)
	req.Len(mocks.EventsOf[event.SessionClosed](rec), 1)

	// And a late incoming channel is released
	late := mocks.NewMockTextChannel(ctrl)
	late.EXPECT().ID().Return("chan-2").AnyTimes()
	late.EXPECT().RequestClose(gomock.Any())
	incoming(late)
	req.Empty(conn.Sessions())
}
