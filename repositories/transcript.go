//go:generate go run go.uber.org/mock/mockgen -source=transcript.go -destination=../mocks/mock_transcript_repository.go -package=mocks
package repositories

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const messagePrefix = "msg:"

type ITranscriptRepository interface {
	StoreMessage(message ArchivedMessage) error
	GetMessages(sessionKey string, cursor *string) ([]ArchivedMessage, *string, error)
	ListSessions() ([]string, error)
}

type TranscriptRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewTranscriptRepository(db *badger.DB, log *slog.Logger, limitMessages *int) TranscriptRepository {
	return TranscriptRepository{db: db, log: log, limitMessages: limitMessages}
}

// ArchivedMessage is one line of a session transcript as stored on disk.
type ArchivedMessage struct {
	ID         uuid.UUID
	Session    string
	AuthorID   string
	AuthorName string
	Text       string
	Origin     string
	Outgoing   bool
	At         time.Time
}

// record is the CBOR layout of an archived message.
type record struct {
	ID         string `cbor:"1,keyasint"`
	Session    string `cbor:"2,keyasint"`
	AuthorID   string `cbor:"3,keyasint"`
	AuthorName string `cbor:"4,keyasint,omitempty"`
	Text       string `cbor:"5,keyasint"`
	Origin     string `cbor:"6,keyasint"`
	Outgoing   bool   `cbor:"7,keyasint,omitempty"`
	At         int64  `cbor:"8,keyasint"`
}

// sessionPrefix is "msg:{hex(session)}:". Session ids are addresses and may
// contain ':', the hex form never does.
func sessionPrefix(session string) string {
	return messagePrefix + hex.EncodeToString([]byte(session)) + ":"
}

// StoreMessage persists a message under "msg:{hex(session)}:{timestamp_padded}:{uuid}".
// The 19-digit zero padding keeps keys of one session in chronological
// order; the uuid separates messages stored at the same nanosecond.
func (r TranscriptRepository) StoreMessage(message ArchivedMessage) error {
	key := fmt.Sprintf("%s%019d:%s", sessionPrefix(message.Session), message.At.UnixNano(), message.ID)
	b, err := cbor.Marshal(fromArchivedMessage(message))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), b)
	})
}

// GetMessages returns the messages of a session, newest first, one page of
// limitMessages at a time. The returned cursor resumes after the last
// message of the page.
func (r TranscriptRepository) GetMessages(sessionKey string, cursor *string) ([]ArchivedMessage, *string, error) {
	var values [][]byte
	var lastKey string
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := sessionPrefix(sessionKey)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration seeks to the greatest key <= seekKey
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999;")...)
		if cursor != nil {
			seekKey = append(append([]byte{}, prefix...), []byte(*cursor)...)
		}
		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && bytes.Equal(it.Item().Key(), seekKey) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitMessages != nil && len(values) == *r.limitMessages {
				r.log.Debug(fmt.Sprintf("Maximum of %d message reached", *r.limitMessages))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	messages := make([]ArchivedMessage, 0, len(values))
	for _, b := range values {
		var rec record
		if err := cbor.Unmarshal(b, &rec); err != nil {
			return nil, nil, err
		}
		message, err := toArchivedMessage(rec)
		if err != nil {
			return nil, nil, err
		}
		messages = append(messages, message)
	}
	return messages, &lastKey, nil
}

// ListSessions returns every session key having at least one message.
func (r TranscriptRepository) ListSessions() ([]string, error) {
	var sessions []string
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		prefix := []byte(messagePrefix)
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rest := strings.TrimPrefix(string(it.Item().Key()), messagePrefix)
			encoded, _, found := strings.Cut(rest, ":")
			if !found {
				continue
			}
			session, err := hex.DecodeString(encoded)
			if err != nil {
				r.log.Warn("Skipping malformed transcript key", "key", string(it.Item().Key()))
				continue
			}
			sessions = append(sessions, string(session))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lo.Uniq(sessions), nil
}

func fromArchivedMessage(message ArchivedMessage) record {
	return record{
		ID:         message.ID.String(),
		Session:    message.Session,
		AuthorID:   message.AuthorID,
		AuthorName: message.AuthorName,
		Text:       message.Text,
		Origin:     message.Origin,
		Outgoing:   message.Outgoing,
		At:         message.At.UnixNano(),
	}
}

func toArchivedMessage(rec record) (ArchivedMessage, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return ArchivedMessage{}, err
	}
	return ArchivedMessage{
		ID:         id,
		Session:    rec.Session,
		AuthorID:   rec.AuthorID,
		AuthorName: rec.AuthorName,
		Text:       rec.Text,
		Origin:     rec.Origin,
		Outgoing:   rec.Outgoing,
		At:         time.Unix(0, rec.At).UTC(),
	}, nil
}
