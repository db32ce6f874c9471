package chat

import (
	"context"

	"github.com/google/uuid"

	"inklink/internal/chat/model"
)

type ChatUsecase interface {
	// RequestConversation opens a REQUESTED thread from a lover to an artist,
	// including the intake snapshot and its synthesized Q&A messages.
	// Returns the new conversation id.
	RequestConversation(ctx context.Context, cmd RequestConversationCommand) (uuid.UUID, error)

	// AcceptConversation moves REQUESTED → ACTIVE, grants the lover send
	// permission and appends a "Request accepted" system message.
	AcceptConversation(ctx context.Context, artistID, conversationID uuid.UUID) error

	// RejectConversation moves REQUESTED → REJECTED (terminal). The lover
	// never gains send permission.
	RejectConversation(ctx context.Context, artistID, conversationID uuid.UUID) error

	// BlockConversation records a block and moves the conversation to BLOCKED.
	BlockConversation(ctx context.Context, blockerID, blockedID, conversationID uuid.UUID) error

	// DeleteConversationForUser hides older messages from one participant
	// only. The peer's view and the inbox entry are unaffected.
	DeleteConversationForUser(ctx context.Context, conversationID, userID uuid.UUID) error

	SendMessage(ctx context.Context, cmd SendMessageCommand) (*SendResult, error)

	// MarkRead zeroes the caller's unread counter, flags their received
	// messages read and upgrades their receipts to READ.
	MarkRead(ctx context.Context, conversationID, userID uuid.UUID) error

	FetchMessages(ctx context.Context, q MessagesQuery) (*MessagesPage, error)
	FetchConversations(ctx context.Context, q ConversationsQuery) (*ConversationsPage, error)

	GetIntake(ctx context.Context, conversationID, userID uuid.UUID) (*model.ConversationIntake, error)
}
