package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronspark/spark-server/internal/domain"
)

func testMessage(id, roomID string, ts time.Time) *domain.Message {
	return &domain.Message{
		ID:        id,
		RoomID:    roomID,
		UserID:    "u-1",
		UserName:  "Ayşe",
		Content:   "merhaba " + id,
		Timestamp: ts,
	}
}

func TestListMessagesByRoom_ChronologicalOrder(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	// Insert out of chronological order.
	require.NoError(t, st.CreateMessage(ctx, testMessage("msg-c", "room-1", base.Add(2*time.Second))))
	require.NoError(t, st.CreateMessage(ctx, testMessage("msg-a", "room-1", base)))
	require.NoError(t, st.CreateMessage(ctx, testMessage("msg-b", "room-1", base.Add(time.Second))))

	messages, err := st.ListMessagesByRoom(ctx, "room-1")
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, "msg-a", messages[0].ID)
	assert.Equal(t, "msg-b", messages[1].ID)
	assert.Equal(t, "msg-c", messages[2].ID)
}

func TestListMessagesByRoom_SubSecondOrdering(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	// Nanosecond-apart timestamps must still sort correctly; naive string
	// formats without fixed-width fractions would interleave these.
	require.NoError(t, st.CreateMessage(ctx, testMessage("msg-late", "room-1", base.Add(100*time.Nanosecond))))
	require.NoError(t, st.CreateMessage(ctx, testMessage("msg-early", "room-1", base.Add(9*time.Nanosecond))))

	messages, err := st.ListMessagesByRoom(ctx, "room-1")
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "msg-early", messages[0].ID)
	assert.Equal(t, "msg-late", messages[1].ID)
}

func TestListMessagesByRoom_ScopedToRoom(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, st.CreateMessage(ctx, testMessage("msg-1", "room-a", now)))
	require.NoError(t, st.CreateMessage(ctx, testMessage("msg-2", "room-b", now)))

	messages, err := st.ListMessagesByRoom(ctx, "room-a")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "msg-1", messages[0].ID)

	messages, err = st.ListMessagesByRoom(ctx, "room-missing")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestListMessagesByRoom_CapsResultSet(t *testing.T) {
	if testing.Short() {
		t.Skip("writes maxQueryLimit+ documents")
	}

	st := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	for i := range maxQueryLimit + 5 {
		msg := testMessage(fmt.Sprintf("msg-%04d", i), "room-1", base.Add(time.Duration(i)*time.Millisecond))
		require.NoError(t, st.CreateMessage(ctx, msg))
	}

	messages, err := st.ListMessagesByRoom(ctx, "room-1")
	require.NoError(t, err)
	assert.Len(t, messages, maxQueryLimit)

	// The cap keeps the oldest messages, trimming the tail.
	assert.Equal(t, "msg-0000", messages[0].ID)
}
