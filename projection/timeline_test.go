package projection

import (
	"comms/domain"
	"comms/domain/event"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeline_Consume_Messages(t *testing.T) {
	timeline := NewTimeline()
	ctx := context.Background()
	alice := domain.NewParticipant("alice", "Alice")
	me := domain.NewParticipant("me", "You")

	received := domain.NewMessage(alice, "Hello Bob", time.Now(), domain.OriginLive)
	sent := domain.NewMessage(me, "Hi Alice", time.Now().Add(time.Second), domain.OriginLocal)

	require.NoError(t, timeline.Consume(ctx, event.SessionReady{SessionID: "alice"}))
	require.NoError(t, timeline.Consume(ctx, event.MessageReceived{SessionID: "alice", Message: received, Participant: alice}))
	require.NoError(t, timeline.Consume(ctx, event.MessageSent{SessionID: "alice", Message: sent}))
	require.NoError(t, timeline.Consume(ctx, event.MessageSendFailed{SessionID: "alice", MessageID: sent.ID, Err: fmt.Errorf("offline")}))

	lines := timeline.Lines("alice")
	require.Len(t, lines, 2)
	require.Equal(t, "Alice", lines[0].Author)
	require.False(t, lines[0].Outgoing)
	require.Equal(t, "You", lines[1].Author)
	require.True(t, lines[1].Outgoing)
	require.True(t, lines[1].Failed)
}

func TestTimeline_Tracks_Session_States(t *testing.T) {
	timeline := NewTimeline()
	ctx := context.Background()

	require.NoError(t, timeline.Consume(ctx, event.SessionOpened{ConnectionID: "c1", SessionID: "bob"}))
	require.NoError(t, timeline.Consume(ctx, event.SessionOpened{ConnectionID: "c1", SessionID: "0"}))
	require.NoError(t, timeline.Consume(ctx, event.SessionReady{SessionID: "bob"}))
	require.NoError(t, timeline.Consume(ctx, event.SessionFailed{SessionID: "0", Err: fmt.Errorf("boom")}))

	require.Equal(t, []string{"bob", "0"}, timeline.Sessions())
	require.Equal(t, "ready", timeline.State("bob"))
	require.Equal(t, "failed", timeline.State("0"))
	require.Equal(t, "", timeline.State("carol"))
	require.Empty(t, timeline.Lines("bob"))
}
