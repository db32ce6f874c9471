package model

import (
	"time"

	"github.com/google/uuid"

	user "inklink/internal/user/model"
)

type MessageType string

const (
	TypeText           MessageType = "TEXT"
	TypeImage          MessageType = "IMAGE"
	TypeVideo          MessageType = "VIDEO"
	TypeFile           MessageType = "FILE"
	TypeSystem         MessageType = "SYSTEM"
	TypeIntakeQuestion MessageType = "INTAKE_QUESTION"
	TypeIntakeAnswer   MessageType = "INTAKE_ANSWER"
)

// Message content is a union over MessageType: text carries Content, media
// carries MediaURL, intake answers additionally carry IntakeFieldKey.
// The ID is generated by the caller and doubles as the idempotency key for
// retried sends.
type Message struct {
	ID uuid.UUID `bun:",pk,type:uuid"`

	ConversationID uuid.UUID     `bun:",notnull,type:uuid"`
	Conversation   *Conversation `bun:"rel:belongs-to,join:conversation_id=id"`

	SenderID uuid.UUID  `bun:",notnull,type:uuid"`
	Sender   *user.User `bun:"rel:belongs-to,join:sender_id=id"`

	// Always the other participant; resolved by the pipeline when absent.
	ReceiverID uuid.UUID `bun:",notnull,type:uuid"`

	MessageType MessageType `bun:",notnull,default:'TEXT'"`
	Content     string      `bun:",null"`
	MediaURL    string      `bun:",nullzero"`

	// Unenforced reference; the target may be hidden by a soft delete.
	ReplyToMessageID *uuid.UUID `bun:",nullzero,type:uuid"`

	// Set only by the receiver's mark-read.
	IsRead bool `bun:",notnull,default:false"`

	// Ties an INTAKE_ANSWER back to its originating question field.
	IntakeFieldKey string `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// Preview renders the inbox one-liner for a message. Exhaustive over
// MessageType so new types fail loudly in review rather than silently
// rendering empty.
func (m *Message) Preview() string {
	switch m.MessageType {
	case TypeImage:
		return "📷 Photo"
	case TypeVideo:
		return "🎥 Video"
	case TypeFile:
		return "📎 Attachment"
	case TypeIntakeAnswer:
		if m.MediaURL != "" && m.Content == "" {
			return "📷 Reference"
		}
		return m.Content
	case TypeText, TypeSystem, TypeIntakeQuestion:
		return m.Content
	default:
		return m.Content
	}
}
