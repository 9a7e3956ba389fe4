package sink_test

import (
	"comms/domain"
	"comms/domain/event"
	"comms/mocks"
	"comms/repositories"
	"comms/sink"
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestArchiveSink_Consume(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockITranscriptRepository(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()
	s := sink.NewArchiveSink(mockRepo, logger)
	at := time.Now().UTC()
	bob := domain.NewParticipant("bob", "Bob")
	me := domain.NewParticipant("me", "You")

	t.Run("Received messages are archived", func(t *testing.T) {
		message := domain.NewMessage(bob, "hi", at, domain.OriginPending)
		mockRepo.EXPECT().StoreMessage(repositories.ArchivedMessage{
			ID:         message.ID,
			Session:    "bob",
			AuthorID:   "bob",
			AuthorName: "Bob",
			Text:       "hi",
			Origin:     "pending",
			At:         at,
		}).Return(nil)

		req.NoError(s.Consume(ctx, event.MessageReceived{SessionID: "bob", Message: message, Participant: bob}))
	})

	t.Run("Sent messages are archived as outgoing", func(t *testing.T) {
		message := domain.NewMessage(me, "yo", at, domain.OriginLocal)
		mockRepo.EXPECT().StoreMessage(gomock.Any()).
			DoAndReturn(func(m repositories.ArchivedMessage) error {
				req.True(m.Outgoing)
				req.Equal("You", m.AuthorName)
				return fmt.Errorf("disk full")
			})

		err := s.Consume(ctx, event.MessageSent{SessionID: "bob", Message: message})
		req.Error(err)
	})

	t.Run("Other events are ignored", func(t *testing.T) {
		req.NoError(s.Consume(ctx, event.SessionReady{SessionID: "bob"}))
	})
}
