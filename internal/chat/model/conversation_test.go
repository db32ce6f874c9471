package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_ConversationStatusTransitions(t *testing.T) {
	cases := []struct {
		from    ConversationStatus
		to      ConversationStatus
		allowed bool
	}{
		{StatusRequested, StatusActive, true},
		{StatusRequested, StatusRejected, true},
		{StatusRequested, StatusBlocked, true},
		{StatusRequested, StatusClosed, false},

		{StatusActive, StatusBlocked, true},
		{StatusActive, StatusRequested, false},
		{StatusActive, StatusRejected, false},

		// Rejection is one-way: no path back to ACTIVE.
		{StatusRejected, StatusBlocked, true},
		{StatusRejected, StatusActive, false},
		{StatusRejected, StatusRequested, false},

		{StatusBlocked, StatusActive, false},
		{StatusBlocked, StatusRequested, false},
		{StatusBlocked, StatusRejected, false},
		{StatusBlocked, StatusBlocked, false},

		{StatusClosed, StatusActive, false},
		{StatusClosed, StatusBlocked, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func Test_ConversationStatusTerminal(t *testing.T) {
	assert.False(t, StatusRequested.Terminal())
	assert.False(t, StatusActive.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusBlocked.Terminal())
	assert.True(t, StatusClosed.Terminal())
}

func Test_ConversationPeerOf(t *testing.T) {
	artistID := uuid.New()
	loverID := uuid.New()
	conv := &Conversation{ID: uuid.New(), ArtistID: artistID, LoverID: loverID}

	assert.Equal(t, loverID, conv.PeerOf(artistID))
	assert.Equal(t, artistID, conv.PeerOf(loverID))

	assert.True(t, conv.HasParticipant(artistID))
	assert.True(t, conv.HasParticipant(loverID))
	assert.False(t, conv.HasParticipant(uuid.New()))
}

func Test_MessagePreview(t *testing.T) {
	cases := []struct {
		name string
		msg  Message
		want string
	}{
		{"text", Message{MessageType: TypeText, Content: "hello"}, "hello"},
		{"image", Message{MessageType: TypeImage, MediaURL: "https://cdn.example/a.jpg"}, "📷 Photo"},
		{"video", Message{MessageType: TypeVideo, MediaURL: "https://cdn.example/a.mp4"}, "🎥 Video"},
		{"file", Message{MessageType: TypeFile, MediaURL: "https://cdn.example/a.pdf"}, "📎 Attachment"},
		{"system", Message{MessageType: TypeSystem, Content: "Request accepted"}, "Request accepted"},
		{"intake question", Message{MessageType: TypeIntakeQuestion, Content: "What size are you thinking of?"}, "What size are you thinking of?"},
		{"intake answer with text", Message{MessageType: TypeIntakeAnswer, Content: "+18"}, "+18"},
		{"intake answer media only", Message{MessageType: TypeIntakeAnswer, MediaURL: "https://cdn.example/ref.jpg"}, "📷 Reference"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.msg.Preview())
		})
	}
}
