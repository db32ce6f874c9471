package realtime

import (
	"testing"
	"time"

	"inklink/config"
	"inklink/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *ConnectionManager {
	cfg := config.Config{}
	log, _ := logger.NewLogger(&cfg)
	return NewConnectionManager(*log)
}

func recvPresence(t *testing.T, ch <-chan PresenceState) PresenceState {
	t.Helper()
	select {
	case st := <-ch:
		return st
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for presence state")
		return PresenceState{}
	}
}

func Test_ConnectionManagerSharesChannels(t *testing.T) {
	m := newTestManager()

	// Two screens opening the same key must land on one channel, or typing
	// indicators from one are invisible to the other.
	a := m.Open("presence:conv-1")
	defer a.Close()
	b := m.Open("presence:conv-1")
	defer b.Close()

	require.Same(t, a.Channel(), b.Channel())

	other := m.Open("presence:conv-2")
	defer other.Close()
	assert.NotSame(t, a.Channel(), other.Channel())
}

func Test_ConnectionManagerReleasesOnLastClose(t *testing.T) {
	m := newTestManager()

	a := m.Open("presence:conv-1")
	b := m.Open("presence:conv-1")
	first := a.Channel()

	a.Close()
	a.Close() // idempotent

	// Still held by b: reopening joins the same channel.
	c := m.Open("presence:conv-1")
	assert.Same(t, first, c.Channel())
	c.Close()
	b.Close()

	// Last handle closed: the channel is gone and a reopen starts fresh.
	fresh := m.Open("presence:conv-1")
	defer fresh.Close()
	assert.NotSame(t, first, fresh.Channel())
	assert.Empty(t, fresh.Channel().Snapshot())
}

func Test_PresenceChannelJoinLeave(t *testing.T) {
	m := newTestManager()
	h := m.Open("presence:conv-1")
	defer h.Close()
	ch := h.Channel()

	userID := uuid.New()
	ch.Join(userID)

	snap := ch.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, userID, snap[0].UserID)
	assert.True(t, snap[0].Online)
	assert.False(t, snap[0].Typing)

	ch.Leave(userID)
	assert.Empty(t, ch.Snapshot())
}

func Test_PresenceChannelTyping(t *testing.T) {
	m := newTestManager()
	h := m.Open("presence:conv-1")
	defer h.Close()
	ch := h.Channel()

	userID := uuid.New()
	ch.Join(userID)

	watch, cancel := ch.Watch()
	defer cancel()

	ch.SetTyping(userID, true)
	st := recvPresence(t, watch)
	assert.Equal(t, userID, st.UserID)
	assert.True(t, st.Typing)
	assert.True(t, st.Online)

	ch.SetTyping(userID, false)
	st = recvPresence(t, watch)
	assert.False(t, st.Typing)
}

func Test_PresenceWatchDelivery(t *testing.T) {
	m := newTestManager()
	h := m.Open("presence:conv-1")
	defer h.Close()
	ch := h.Channel()

	watch, cancel := ch.Watch()

	userID := uuid.New()
	ch.Join(userID)
	joined := recvPresence(t, watch)
	assert.True(t, joined.Online)

	ch.Leave(userID)
	left := recvPresence(t, watch)
	assert.Equal(t, userID, left.UserID)
	assert.False(t, left.Online)

	// After cancel no further states arrive.
	cancel()
	ch.Join(uuid.New())
	select {
	case st := <-watch:
		t.Fatalf("state delivered after cancel: %+v", st)
	case <-time.After(50 * time.Millisecond):
	}
}
