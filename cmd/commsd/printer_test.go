package main

import (
	"bytes"
	"comms/domain"
	"comms/domain/event"
	"comms/projection"
	"context"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Renders_Messages(t *testing.T) {
	req := require.New(t)
	color.Disable()
	var out bytes.Buffer
	p := newPrinter(&out)
	bob := domain.NewParticipant("bob", "Bob")
	at := time.Date(2024, 1, 1, 10, 11, 12, 0, time.UTC)

	req.NoError(p.Consume(context.Background(), event.MessageReceived{
		SessionID: "s1",
		Message:   domain.NewMessage(bob, "hello", at, domain.OriginLive),
	}))

	req.Contains(out.String(), "[10:11:12] Bob: hello")
}

func TestPrintHistory_Flags_Failed_Lines(t *testing.T) {
	req := require.New(t)
	color.Disable()
	var out bytes.Buffer

	printHistory(&out, []projection.Line{
		{Author: "You", Text: "lost", Outgoing: true, Failed: true},
		{Author: "Bob", Text: "hi"},
	})

	req.Contains(out.String(), "You: lost (not delivered)")
	req.Contains(out.String(), "Bob: hi")
}

func TestLifecycle_Waits_For_Matching_Connection(t *testing.T) {
	req := require.New(t)
	l := newLifecycle()
	ctx := context.Background()

	req.NoError(l.Consume(ctx, event.ConnectionReady{ConnectionID: "other"}))
	req.NoError(l.Consume(ctx, event.ConnectionReady{ConnectionID: "mine"}))
	req.NoError(l.connectionReady(ctx, "mine"))

	req.NoError(l.Consume(ctx, event.SessionFailed{SessionID: "s1", Err: context.DeadlineExceeded}))
	req.ErrorIs(l.sessionReady(ctx, "s1"), context.DeadlineExceeded)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	req.ErrorIs(l.providerReady(canceled), context.Canceled)
}
