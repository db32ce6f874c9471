package chat

import (
	"time"

	"github.com/google/uuid"

	"inklink/internal/chat/model"
)

// NOTE: commands travel from the UI layer into the usecase,
// DTOs travel back out.

// IntakeForm is the fixed five-field questionnaire a lover submits when
// requesting a conversation with an artist.
type IntakeForm struct {
	Size        string
	Color       string
	Description string
	IsAdult     bool
	References  []string // media URLs, uploaded elsewhere
}

type RequestConversationCommand struct {
	LoverID  uuid.UUID
	ArtistID uuid.UUID
	Intake   IntakeForm
}

type SendMessageCommand struct {
	// MessageID must be generated by the caller before sending and reused on
	// retries of the same logical send.
	MessageID      uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID

	// ReceiverID is optional; the pipeline resolves the other participant
	// when it is zero.
	ReceiverID uuid.UUID

	MessageType      model.MessageType
	Content          string
	MediaURL         string
	ReplyToMessageID *uuid.UUID
}

type SendResult struct {
	Message *model.Message

	// Duplicate is true when the message id was already stored; the retry
	// was absorbed without inserting a second row.
	Duplicate bool
}

// MessageCursor pages strictly older than (CreatedAt, ID).
type MessageCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type MessagesQuery struct {
	ConversationID uuid.UUID
	UserID         uuid.UUID
	Cursor         *MessageCursor
	Limit          int
}

type MessagesPage struct {
	Messages []model.Message

	// Next is set when exactly a full page came back — "more likely exists",
	// not an exact signal.
	Next *MessageCursor
}

type ConversationCursor struct {
	LastMessageAt *time.Time
	ID            uuid.UUID
}

type ConversationsQuery struct {
	UserID uuid.UUID
	Cursor *ConversationCursor
	Limit  int
}

// ConversationListItem is one enriched inbox row.
type ConversationListItem struct {
	ConversationID uuid.UUID
	Status         model.ConversationStatus

	PeerID        uuid.UUID
	PeerHandle    string
	PeerName      string
	PeerAvatarURL string

	UnreadCount   int
	LastMessageAt *time.Time
	Preview       string

	// Seen is asymmetric: for a last message the caller sent it reflects the
	// peer's receipt status, for a received one the caller's own isRead flag.
	Seen bool
}

type ConversationsPage struct {
	Items []ConversationListItem
	Next  *ConversationCursor
}
