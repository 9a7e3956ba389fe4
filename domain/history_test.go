package domain

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func texts(messages []Message) []string {
	return lo.Map(messages, func(m Message, _ int) string { return m.Text })
}

func TestHistory_Merge_Keeps_Backend_Order(t *testing.T) {
	req := require.New(t)
	history := NewHistory()
	author := NewParticipant("bob", "Bob")
	now := time.Now()

	// Given pending messages whose timestamps are not sorted
	pending := []Message{
		NewMessage(author, "hi", now.Add(time.Minute), OriginPending).WithBackendID("1"),
		NewMessage(author, "yo", now, OriginPending).WithBackendID("2"),
	}

	// When they are merged, then a live message arrives
	accepted := history.Merge(pending)
	history.Append(NewMessage(author, "sup", now.Add(-time.Minute), OriginLive).WithBackendID("3"))

	// Then the order is the delivery order, never re-sorted by time
	req.Len(accepted, 2)
	req.Equal([]string{"hi", "yo", "sup"}, texts(history.Snapshot()))
}

func TestHistory_Append_Deduplicates_By_Backend_ID(t *testing.T) {
	req := require.New(t)
	history := NewHistory()
	author := NewParticipant("bob", "Bob")

	req.True(history.Append(NewMessage(author, "hi", time.Now(), OriginPending).WithBackendID("42")))
	req.False(history.Append(NewMessage(author, "hi", time.Now(), OriginLive).WithBackendID("42")))
	req.True(history.Contains("42"))
	req.Equal(1, history.Len())
}

func TestHistory_Append_Without_Backend_ID_Never_Deduplicates(t *testing.T) {
	req := require.New(t)
	history := NewHistory()
	author := NewParticipant("bob", "Bob")

	req.True(history.Append(NewMessage(author, "same", time.Now(), OriginLocal)))
	req.True(history.Append(NewMessage(author, "same", time.Now(), OriginLocal)))
	req.Equal(2, history.Len())
}

func TestHistory_Snapshot_Is_Isolated(t *testing.T) {
	req := require.New(t)
	history := NewHistory()
	author := NewParticipant("bob", "Bob")
	history.Append(NewMessage(author, "first", time.Now(), OriginLive))

	// When the snapshot is mutated
	snapshot := history.Snapshot()
	snapshot[0].Text = "changed"
	_ = append(snapshot, NewMessage(author, "extra", time.Now(), OriginLive))

	// Then the live history is untouched
	req.Equal(1, history.Len())
	req.Equal("first", history.Snapshot()[0].Text)
}
