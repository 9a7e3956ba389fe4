package internal

import (
	"comms/mocks"
	"comms/repositories"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInspector_Renders_First_Session_By_Default(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockITranscriptRepository(ctrl)
	next := "msg:alice:0000000000000000001:x"

	repository.EXPECT().ListSessions().Return([]string{"alice", "bob"}, nil)
	repository.EXPECT().GetMessages("alice", nil).Return([]repositories.ArchivedMessage{
		{ID: uuid.New(), Session: "alice", AuthorID: "self", AuthorName: "You", Text: "hello", Origin: "local", Outgoing: true, At: time.Now()},
		{ID: uuid.New(), Session: "alice", AuthorID: "alice", Text: "hi <there>", Origin: "live", At: time.Now()},
	}, &next, nil)

	recorder := httptest.NewRecorder()
	NewInspector(repository, slog.Default()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/inspect", nil))

	req.Equal(http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	req.Contains(body, "hello")
	req.Contains(body, "hi &lt;there&gt;")
	req.Contains(body, `class="current">alice`)
	req.Contains(body, "Older messages")
}

func TestInspector_Passes_Session_And_Cursor(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockITranscriptRepository(ctrl)

	repository.EXPECT().ListSessions().Return([]string{"alice", "bob"}, nil)
	repository.EXPECT().GetMessages("bob", gomock.Any()).
		DoAndReturn(func(session string, cursor *string) ([]repositories.ArchivedMessage, *string, error) {
			req.NotNil(cursor)
			req.Equal("abc", *cursor)
			return nil, nil, nil
		})

	recorder := httptest.NewRecorder()
	NewInspector(repository, slog.Default()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/inspect?session=bob&cursor=abc", nil))

	req.Equal(http.StatusOK, recorder.Code)
	req.NotContains(recorder.Body.String(), "Older messages")
}

func TestInspector_Repository_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockITranscriptRepository(ctrl)

	repository.EXPECT().ListSessions().Return(nil, errors.New("disk on fire"))

	recorder := httptest.NewRecorder()
	NewInspector(repository, slog.Default()).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/inspect", nil))

	req.Equal(http.StatusInternalServerError, recorder.Code)
}
