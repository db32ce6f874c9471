package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationIntake is the canonical snapshot of the request form, written
// exactly once at request time. Its content is also projected into
// INTAKE_QUESTION/INTAKE_ANSWER messages for display; the two are never
// reconciled after creation.
type ConversationIntake struct {
	ID uuid.UUID `bun:",pk,type:uuid"`

	ConversationID uuid.UUID     `bun:",notnull,unique,type:uuid"`
	Conversation   *Conversation `bun:"rel:belongs-to,join:conversation_id=id"`

	CreatedByUserID uuid.UUID `bun:",notnull,type:uuid"`

	SchemaVersion int `bun:",notnull,default:1"`

	Questions map[string]string `bun:"type:jsonb"`
	Answers   map[string]any    `bun:"type:jsonb"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
