package realtime

import (
	"time"

	"github.com/google/uuid"
)

type Op string

const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
)

// Event is one change-feed notification. ID is the primary key of the
// changed row; delivery is at-least-once, so insert events can arrive twice
// after a reconnect and subscribers de-duplicate on it.
type Event struct {
	ID         uuid.UUID
	Table      string
	Op         Op
	Payload    any
	OccurredAt time.Time
}

// Topic keys. One conversation-list topic per user, one message and one
// receipt topic per open conversation.

func ConversationsTopic(userID uuid.UUID) string {
	return "conversations:" + userID.String()
}

func MessagesTopic(conversationID uuid.UUID) string {
	return "messages:" + conversationID.String()
}

func ReceiptsTopic(conversationID uuid.UUID) string {
	return "receipts:" + conversationID.String()
}
