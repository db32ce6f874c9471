package model

import (
	"time"

	"github.com/google/uuid"

	user "inklink/internal/user/model"
)

type ConversationStatus string

const (
	StatusRequested ConversationStatus = "REQUESTED"
	StatusActive    ConversationStatus = "ACTIVE"
	StatusRejected  ConversationStatus = "REJECTED"
	StatusBlocked   ConversationStatus = "BLOCKED"
	// StatusClosed is reserved. No operation transitions into it yet.
	StatusClosed ConversationStatus = "CLOSED"
)

// allowedTransitions is the gate's edge table. Transitions are monotonic:
// a REJECTED or BLOCKED conversation can never become ACTIVE again.
var allowedTransitions = map[ConversationStatus]map[ConversationStatus]bool{
	StatusRequested: {StatusActive: true, StatusRejected: true, StatusBlocked: true},
	StatusActive:    {StatusBlocked: true},
	StatusRejected:  {StatusBlocked: true},
	StatusBlocked:   {},
	StatusClosed:    {},
}

func (s ConversationStatus) CanTransitionTo(next ConversationStatus) bool {
	return allowedTransitions[s][next]
}

// Terminal reports whether the conversation accepts no further messages.
func (s ConversationStatus) Terminal() bool {
	return s == StatusRejected || s == StatusBlocked || s == StatusClosed
}

// Conversation is a 1:1 thread between exactly one artist and one lover.
// It is never hard-deleted; "deleting" is a per-participant marker on
// ConversationUser.
type Conversation struct {
	ID uuid.UUID `bun:",pk,type:uuid"`

	ArtistID uuid.UUID  `bun:",notnull,type:uuid"`
	Artist   *user.User `bun:"rel:belongs-to,join:artist_id=id"`

	LoverID uuid.UUID  `bun:",notnull,type:uuid"`
	Lover   *user.User `bun:"rel:belongs-to,join:lover_id=id"`

	Status      ConversationStatus `bun:",notnull,default:'REQUESTED'"`
	RequestedBy uuid.UUID          `bun:",notnull,type:uuid"`

	// Aggregates maintained by the delivery pipeline, best-effort.
	LastMessageID *uuid.UUID `bun:",nullzero,type:uuid"`
	LastMessage   *Message   `bun:"rel:belongs-to,join:last_message_id=id"`
	LastMessageAt *time.Time `bun:",nullzero"`

	Participants []ConversationUser `bun:"rel:has-many,join:id=conversation_id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// PeerOf resolves "the participant that isn't userID".
func (c *Conversation) PeerOf(userID uuid.UUID) uuid.UUID {
	if c.ArtistID == userID {
		return c.LoverID
	}
	return c.ArtistID
}

func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.ArtistID == userID || c.LoverID == userID
}
