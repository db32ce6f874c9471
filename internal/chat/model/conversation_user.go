package model

import (
	"time"

	"github.com/google/uuid"

	user "inklink/internal/user/model"
)

type ParticipantRole string

const (
	RoleArtist ParticipantRole = "ARTIST"
	RoleLover  ParticipantRole = "LOVER"
)

// ConversationUser is one participant's view of a conversation: send
// permission, unread counter and the per-user soft-delete boundary.
// Exactly two rows exist per conversation, one per role.
type ConversationUser struct {
	ConversationID uuid.UUID     `bun:",pk,type:uuid"`
	Conversation   *Conversation `bun:"rel:belongs-to,join:conversation_id=id"`

	UserID uuid.UUID  `bun:",pk,type:uuid"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	Role ParticipantRole `bun:",notnull"`

	// The lover starts without send permission; accept() flips it on.
	CanSend bool `bun:",notnull,default:false"`

	UnreadCount int        `bun:",notnull,default:0"`
	LastReadAt  *time.Time `bun:",nullzero"`

	// DeletedAt hides messages created before it from this participant only.
	// It never removes the conversation and is never cleared here.
	DeletedAt *time.Time `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
