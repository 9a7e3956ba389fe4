package runtime

import (
	"comms/contract"
	"comms/domain/event"
	"comms/mocks"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFanout_Delivers_To_Every_Current_Sink(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockSink1 := mocks.NewMockEventSink(ctrl)
	mockSink2 := mocks.NewMockEventSink(ctrl)
	fanout := NewFanout(log, time.Second)
	evt := event.SessionReady{SessionID: "bob"}

	// Given two sinks subscribed
	fanout.Subscribe(mockSink1)
	fanout.Subscribe(mockSink2)
	req.Equal(2, fanout.Observers())

	// Then both consume the event, the first one failing does not stop the second
	gomock.InOrder(
		mockSink1.EXPECT().Consume(gomock.Any(), evt).Return(fmt.Errorf("disk full")),
		mockSink2.EXPECT().Consume(gomock.Any(), evt).Return(nil),
	)

	// When an event is published
	fanout.Publish(evt)
}

func TestFanout_Does_Not_Replay_To_Late_Subscribers(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	mockSink := mocks.NewMockEventSink(ctrl)
	fanout := NewFanout(log, time.Second)

	// Given an event published with no observer
	fanout.Publish(event.SessionReady{SessionID: "bob"})

	// When a sink subscribes afterwards, then it only sees later events
	fanout.Subscribe(mockSink)
	mockSink.EXPECT().Consume(gomock.Any(), event.SessionClosed{SessionID: "bob"}).Return(nil).Times(1)
	fanout.Publish(event.SessionClosed{SessionID: "bob"})
}

func TestFanout_Sink_Context_Has_Timeout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	fanout := NewFanout(log, 20*time.Millisecond)

	var got error
	fanout.Subscribe(contract.SinkFunc(func(ctx context.Context, e event.Event) error {
		<-ctx.Done() // Waiting for timeout to trigger cancellation
		got = ctx.Err()
		return got
	}))

	fanout.Publish(event.SessionReady{SessionID: "bob"})

	req.ErrorIs(got, context.DeadlineExceeded)
}

func TestFanout_Survives_A_Panicking_Sink(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	fanout := NewFanout(log, time.Second)
	delivered := false

	fanout.Subscribe(contract.SinkFunc(func(ctx context.Context, e event.Event) error {
		panic("boom")
	}))
	fanout.Subscribe(contract.SinkFunc(func(ctx context.Context, e event.Event) error {
		delivered = true
		return nil
	}))

	fanout.Publish(event.SessionReady{SessionID: "bob"})

	req.True(delivered)
}
