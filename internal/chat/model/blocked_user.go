package model

import (
	"time"

	"github.com/google/uuid"
)

// BlockedUser is a one-way, conversation-scoped block record. It does not
// prevent a future request between the same pair.
type BlockedUser struct {
	ID uuid.UUID `bun:",pk,type:uuid"`

	BlockerID uuid.UUID `bun:",notnull,type:uuid"`
	BlockedID uuid.UUID `bun:",notnull,type:uuid"`

	ConversationID uuid.UUID `bun:",notnull,type:uuid"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
