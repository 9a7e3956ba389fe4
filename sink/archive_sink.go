package sink

import (
	"comms/domain"
	"comms/domain/event"
	"comms/repositories"
	"context"
	"log/slog"
)

// ArchiveSink writes every received and sent message to the transcript
// repository, keyed by session.
type ArchiveSink struct {
	repository repositories.ITranscriptRepository
	log        *slog.Logger
}

func NewArchiveSink(repository repositories.ITranscriptRepository, log *slog.Logger) ArchiveSink {
	return ArchiveSink{repository: repository, log: log}
}

func (a ArchiveSink) Consume(_ context.Context, e event.Event) error {
	switch evt := e.(type) {
	case event.MessageReceived:
		return a.repository.StoreMessage(toArchivedMessage(evt.SessionID, evt.Message, false))
	case event.MessageSent:
		return a.repository.StoreMessage(toArchivedMessage(evt.SessionID, evt.Message, true))
	default:
		a.log.Debug("Event not archived", "subject", e.Subject())
		return nil
	}
}

func toArchivedMessage(sessionID string, message domain.Message, outgoing bool) repositories.ArchivedMessage {
	return repositories.ArchivedMessage{
		ID:         message.ID,
		Session:    sessionID,
		AuthorID:   string(message.AuthorID()),
		AuthorName: message.AuthorName(),
		Text:       message.Text,
		Origin:     message.Origin.String(),
		Outgoing:   outgoing,
		At:         message.Timestamp,
	}
}
