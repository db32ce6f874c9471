package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	"inklink/internal/chat/model"
)

type ConversationRepository interface {
	// CreateConversation writes the conversation, both participant rows, the
	// intake snapshot and the synthesized messages in one transaction.
	CreateConversation(ctx context.Context, conv *model.Conversation, participants []model.ConversationUser, intake *model.ConversationIntake, messages []model.Message) error

	GetConversationByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error)
	GetParticipant(ctx context.Context, conversationID, userID uuid.UUID) (*model.ConversationUser, error)

	// TransitionStatus performs a guarded single-statement update
	// (WHERE id = ? AND status = from) and reports whether a row moved.
	TransitionStatus(ctx context.Context, conversationID uuid.UUID, from, to model.ConversationStatus) (bool, error)

	SetParticipantCanSend(ctx context.Context, conversationID, userID uuid.UUID, canSend bool) error
	SoftDeleteParticipant(ctx context.Context, conversationID, userID uuid.UUID, at time.Time) error
	InsertBlockedUser(ctx context.Context, block *model.BlockedUser) error

	// InsertMessage is idempotent on the message id; it reports whether a new
	// row was actually inserted.
	InsertMessage(ctx context.Context, msg *model.Message) (bool, error)
	InsertReceipt(ctx context.Context, receipt *model.MessageReceipt) error
	TouchLastMessage(ctx context.Context, conversationID, messageID uuid.UUID, at time.Time) error

	// IncrementUnread bumps the counter in a single statement on the server
	// side, never read-then-write from the client.
	IncrementUnread(ctx context.Context, conversationID, userID uuid.UUID) error

	ResetUnread(ctx context.Context, conversationID, userID uuid.UUID, at time.Time) error
	MarkMessagesRead(ctx context.Context, conversationID, userID uuid.UUID) (int64, error)
	MarkReceiptsRead(ctx context.Context, conversationID, userID uuid.UUID, at time.Time) (int64, error)

	ListMessages(ctx context.Context, conversationID uuid.UUID, cursor *MessageCursor, deletedAfter *time.Time, limit int) ([]model.Message, error)
	ListConversations(ctx context.Context, userID uuid.UUID, cursor *ConversationCursor, limit int) ([]model.Conversation, error)
	GetReceiptsByMessageIDs(ctx context.Context, messageIDs []uuid.UUID) ([]model.MessageReceipt, error)
	GetIntake(ctx context.Context, conversationID uuid.UUID) (*model.ConversationIntake, error)
}
