package world

import (
	"comms/contract"
	"comms/domain"
	"comms/domain/event"
	"comms/errors"
	"comms/mocks"
	"comms/runtime"
	"comms/session"
	"fmt"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func credentials() domain.Credentials {
	return domain.Credentials{Protocol: Protocol, Username: "ruth.resident", Secret: "s3cr3t", Server: "grid.example.org"}
}

// connectedWorld returns a ready connection and the observer it subscribed.
func connectedWorld(t *testing.T, transport *mocks.MockWorldTransport, rec *mocks.Recorder) (contract.Connection, contract.WorldObserver) {
	var world contract.WorldObserver
	transport.EXPECT().IsConnected().Return(true).AnyTimes()
	transport.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(o contract.WorldObserver) func() {
		world = o
		return func() {}
	})
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	p := NewProvider(transport, runtime.InlineDispatcher{}, log, session.Options{Observers: []contract.EventSink{rec}})
	conn, err := p.OpenConnection(credentials())
	require.NoError(t, err)
	require.Equal(t, domain.ConnectionReady, conn.State())
	return conn, world
}

func TestProvider_Is_Ready_At_Construction(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockWorldTransport(ctrl)
	rec := &mocks.Recorder{}

	p := NewProvider(transport, runtime.InlineDispatcher{}, log, session.Options{Observers: []contract.EventSink{rec}})

	req.Equal(domain.ProviderReady, p.State())
	req.Equal([]string{Protocol}, p.SupportedProtocols())
	req.Len(mocks.EventsOf[event.ProviderReady](rec), 1)
	req.Len(mocks.EventsOf[event.ProtocolListUpdated](rec), 1)
}

func TestProvider_OpenConnection_Requires_A_Connected_Transport(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockWorldTransport(ctrl)
	p := NewProvider(transport, runtime.InlineDispatcher{}, log, session.Options{})

	jabber := credentials()
	jabber.Protocol = "jabber"
	_, err := p.OpenConnection(jabber)
	req.ErrorIs(err, errors.ErrUnsupportedProtocol)

	transport.EXPECT().IsConnected().Return(false)
	_, err = p.OpenConnection(credentials())
	req.ErrorIs(err, errors.ErrBackendUnavailable)
	req.Empty(p.Connections())
}

func TestConnection_Fails_When_The_Transport_Drops_Before_Readiness(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockWorldTransport(ctrl)
	rec := &mocks.Recorder{}
	transport.EXPECT().Subscribe(gomock.Any()).Return(func() {})
	transport.EXPECT().IsConnected().Return(false)

	conn := NewConnection(transport, credentials(), runtime.InlineDispatcher{}, log,
		session.Options{Observers: []contract.EventSink{rec}})
	conn.Start()

	req.Equal(domain.ConnectionError, conn.State())
	req.ErrorIs(conn.Err(), errors.ErrBackendUnavailable)
	req.Len(mocks.EventsOf[event.ConnectionFailed](rec), 1)
}

func TestConnection_Routes_Public_Chat_To_Channel_Zero(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockWorldTransport(ctrl)
	rec := &mocks.Recorder{}
	conn, world := connectedWorld(t, transport, rec)

	// When local chat arrives from an avatar, the server and an object
	world.ChatFromAgent("agent-7", "Ruth Resident", "hi")
	world.ChatFromServer("Region restarting")
	world.ChatFromObject("obj-1", "Greeter", "Welcome!")

	// Then a single public session holds all of it
	sessions := conn.Sessions()
	req.Len(sessions, 1)
	req.Equal(domain.PublicChannelID, sessions[0].ID())
	req.Equal(domain.PublicChannel, sessions[0].Kind())
	req.Len(sessions[0].History(), 3)
	opened := mocks.EventsOf[event.SessionOpened](rec)
	req.Len(opened, 1)
	req.True(opened[0].Inbound)

	// And opening it locally returns the same session
	s, err := conn.OpenSession(domain.PublicChannel, "0")
	req.NoError(err)
	req.Same(sessions[0], s)
}

func TestConnection_Routes_Instant_Messages_Per_Agent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockWorldTransport(ctrl)
	rec := &mocks.Recorder{}
	conn, world := connectedWorld(t, transport, rec)

	world.InstantMessage("agent-7", "Ruth Resident", "psst")
	world.InstantMessage("agent-9", "Bo Builder", "hello")
	world.InstantMessage("agent-7", "Ruth Resident", "still there?")

	sessions := conn.Sessions()
	req.Len(sessions, 2)
	req.Equal("agent-7", sessions[0].ID())
	req.Len(sessions[0].History(), 2)
	req.Equal("Ruth Resident", sessions[0].Participants()[0].Name())
	req.Len(sessions[1].History(), 1)
}

func TestConnection_Rejects_Other_Public_Channels(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockWorldTransport(ctrl)
	conn, _ := connectedWorld(t, transport, &mocks.Recorder{})

	_, err := conn.OpenSession(domain.PublicChannel, "1")
	req.ErrorIs(err, errors.ErrInvalidAddressing)
	req.Empty(conn.Sessions())
}

func TestConnection_Disconnect_Invalidates_Sessions(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockWorldTransport(ctrl)
	rec := &mocks.Recorder{}
	conn, world := connectedWorld(t, transport, rec)
	s, err := conn.OpenSession(domain.PrivateChat, "agent-7")
	req.NoError(err)

	// When the transport drops
	world.Disconnected(fmt.Errorf("logged out by simulator"))

	// Then everything is in Error and later traffic is ignored
	req.Equal(domain.ConnectionError, conn.State())
	req.ErrorIs(conn.Err(), errors.ErrInvalidated)
	req.Equal(domain.SessionError, s.State())
	req.Len(mocks.EventsOf[event.SessionFailed](rec), 1)
	world.ChatFromServer("anyone?")
	req.Empty(conn.Sessions())
}

func TestConnection_Close_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockWorldTransport(ctrl)
	rec := &mocks.Recorder{}
	conn, _ := connectedWorld(t, transport, rec)
	s, err := conn.OpenSession(domain.PublicChannel, "0")
	req.NoError(err)

	req.NoError(conn.Close())
	req.NoError(conn.Close())

	req.Equal(domain.ConnectionClosed, conn.State())
	req.Equal(domain.SessionClosed, s.State())
	req.Len(mocks.EventsOf[event.ConnectionClosed](rec), 1)
	_, err = conn.OpenSession(domain.PublicChannel, "0")
	req.ErrorIs(err, errors.ErrNotReady)
}

func TestConnection_Announces_Session_Once_Opened_Then_Ready(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockWorldTransport(ctrl)
	rec := &mocks.Recorder{}
	conn, world := connectedWorld(t, transport, rec)

	// Given a session opened locally
	s, err := conn.OpenSession(domain.PrivateChat, "agent-7")
	req.NoError(err)

	// When inbound traffic targets the same agent
	world.InstantMessage("agent-7", "Ruth Resident", "psst")

	// Then one session exists, announced opened before ready, and nothing
	// reports it closed
	req.Len(conn.Sessions(), 1)
	req.Len(s.History(), 1)
	req.Len(mocks.EventsOf[event.SessionOpened](rec), 1)
	req.Len(mocks.EventsOf[event.SessionReady](rec), 1)
	req.Empty(mocks.EventsOf[event.SessionClosed](rec))

	var order []string
	for _, e := range rec.Events() {
		switch e.(type) {
		case event.SessionOpened:
			order = append(order, "opened")
		case event.SessionReady:
			order = append(order, "ready")
		}
	}
	req.Equal([]string{"opened", "ready"}, order)
}

func TestProvider_Forgets_Closed_Connections(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockWorldTransport(ctrl)
	transport.EXPECT().IsConnected().Return(true).AnyTimes()
	transport.EXPECT().Subscribe(gomock.Any()).Return(func() {}).Times(2)
	p := NewProvider(transport, runtime.InlineDispatcher{}, log, session.Options{})

	// Given a connection closed by the client
	closed, err := p.OpenConnection(credentials())
	req.NoError(err)
	req.NoError(closed.Close())

	// When another one is opened
	conn, err := p.OpenConnection(credentials())
	req.NoError(err)

	// Then the closed connection is no longer listed
	connections := p.Connections()
	req.Len(connections, 1)
	req.Same(conn, connections[0])
}
