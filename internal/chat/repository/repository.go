package repository

import (
	"context"
	"database/sql"
	"time"

	"inklink/internal/chat"
	"inklink/internal/chat/model"
	"inklink/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrIntakeNotFound       = errors.New("intake not found")
)

// inboxStatuses are the only statuses the conversation list ever shows.
// REJECTED/BLOCKED/CLOSED rows still exist for audit but never surface.
var inboxStatuses = []model.ConversationStatus{model.StatusRequested, model.StatusActive}

type ConversationRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewConversationRepository(db *bun.DB, logger logger.Logger) *ConversationRepository {
	return &ConversationRepository{
		db:     db,
		logger: &logger,
	}
}

// CreateConversation writes the whole request in one transaction so a
// failing sub-insert cannot leave a conversation without participants or
// intake behind.
func (r *ConversationRepository) CreateConversation(ctx context.Context, conv *model.Conversation, participants []model.ConversationUser, intake *model.ConversationIntake, messages []model.Message) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(conv).Exec(ctx); err != nil {
			return errors.Wrap(err, "convRepo.CreateConversation.InsertConversation: ")
		}

		if _, err := tx.NewInsert().Model(&participants).Exec(ctx); err != nil {
			return errors.Wrap(err, "convRepo.CreateConversation.InsertParticipants: ")
		}

		if _, err := tx.NewInsert().Model(intake).Exec(ctx); err != nil {
			return errors.Wrap(err, "convRepo.CreateConversation.InsertIntake: ")
		}

		if len(messages) > 0 {
			if _, err := tx.NewInsert().Model(&messages).Exec(ctx); err != nil {
				return errors.Wrap(err, "convRepo.CreateConversation.InsertMessages: ")
			}
		}

		return nil
	})
}

func (r *ConversationRepository) GetConversationByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	conv := new(model.Conversation)
	err := r.db.NewSelect().Model(conv).Where("conversation.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConversationNotFound
		}
		return nil, errors.Wrap(err, "convRepo.GetConversationByID.Scan: ")
	}
	return conv, nil
}

func (r *ConversationRepository) GetParticipant(ctx context.Context, conversationID, userID uuid.UUID) (*model.ConversationUser, error) {
	participant := new(model.ConversationUser)
	err := r.db.NewSelect().
		Model(participant).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, errors.Wrap(err, "convRepo.GetParticipant.Scan: ")
	}
	return participant, nil
}

// TransitionStatus only moves a conversation that is still in the expected
// state. A zero-row update means somebody else got there first; the caller
// decides what that means.
func (r *ConversationRepository) TransitionStatus(ctx context.Context, conversationID uuid.UUID, from, to model.ConversationStatus) (bool, error) {
	res, err := r.db.NewUpdate().
		Model((*model.Conversation)(nil)).
		Set("status = ?", to).
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND status = ?", conversationID, from).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "convRepo.TransitionStatus.Update: ")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "convRepo.TransitionStatus.RowsAffected: ")
	}
	return affected > 0, nil
}

func (r *ConversationRepository) SetParticipantCanSend(ctx context.Context, conversationID, userID uuid.UUID, canSend bool) error {
	_, err := r.db.NewUpdate().
		Model((*model.ConversationUser)(nil)).
		Set("can_send = ?", canSend).
		Set("updated_at = ?", time.Now()).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "convRepo.SetParticipantCanSend.Update: ")
	}
	return nil
}

func (r *ConversationRepository) SoftDeleteParticipant(ctx context.Context, conversationID, userID uuid.UUID, at time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*model.ConversationUser)(nil)).
		Set("deleted_at = ?", at).
		Set("updated_at = ?", at).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "convRepo.SoftDeleteParticipant.Update: ")
	}
	return nil
}

func (r *ConversationRepository) InsertBlockedUser(ctx context.Context, block *model.BlockedUser) error {
	_, err := r.db.NewInsert().Model(block).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "convRepo.InsertBlockedUser.Insert: ")
	}
	return nil
}

// InsertMessage relies on the primary key for idempotency: a retried send
// with the same id hits ON CONFLICT DO NOTHING and reports inserted=false.
func (r *ConversationRepository) InsertMessage(ctx context.Context, msg *model.Message) (bool, error) {
	res, err := r.db.NewInsert().
		Model(msg).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "convRepo.InsertMessage.Insert: ")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "convRepo.InsertMessage.RowsAffected: ")
	}
	return affected > 0, nil
}

func (r *ConversationRepository) InsertReceipt(ctx context.Context, receipt *model.MessageReceipt) error {
	_, err := r.db.NewInsert().Model(receipt).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "convRepo.InsertReceipt.Insert: ")
	}
	return nil
}

func (r *ConversationRepository) TouchLastMessage(ctx context.Context, conversationID, messageID uuid.UUID, at time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*model.Conversation)(nil)).
		Set("last_message_id = ?", messageID).
		Set("last_message_at = ?", at).
		Set("updated_at = ?", at).
		Where("id = ?", conversationID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "convRepo.TouchLastMessage.Update: ")
	}
	return nil
}

// IncrementUnread bumps the counter server-side in one statement. Concurrent
// senders both land their increment; there is no read-then-write window.
func (r *ConversationRepository) IncrementUnread(ctx context.Context, conversationID, userID uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*model.ConversationUser)(nil)).
		Set("unread_count = unread_count + 1").
		Set("updated_at = ?", time.Now()).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "convRepo.IncrementUnread.Update: ")
	}
	return nil
}

func (r *ConversationRepository) ResetUnread(ctx context.Context, conversationID, userID uuid.UUID, at time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*model.ConversationUser)(nil)).
		Set("unread_count = 0").
		Set("last_read_at = ?", at).
		Set("updated_at = ?", at).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "convRepo.ResetUnread.Update: ")
	}
	return nil
}

func (r *ConversationRepository) MarkMessagesRead(ctx context.Context, conversationID, userID uuid.UUID) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*model.Message)(nil)).
		Set("is_read = TRUE").
		Set("updated_at = ?", time.Now()).
		Where("conversation_id = ? AND receiver_id = ? AND is_read = FALSE", conversationID, userID).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "convRepo.MarkMessagesRead.Update: ")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "convRepo.MarkMessagesRead.RowsAffected: ")
	}
	return affected, nil
}

// MarkReceiptsRead upgrades this user's DELIVERED receipts in the
// conversation to READ. Receipts are never downgraded.
func (r *ConversationRepository) MarkReceiptsRead(ctx context.Context, conversationID, userID uuid.UUID, at time.Time) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*model.MessageReceipt)(nil)).
		Set("status = ?", model.ReceiptRead).
		Set("read_at = ?", at).
		Where("user_id = ? AND status = ?", userID, model.ReceiptDelivered).
		Where("message_id IN (SELECT id FROM messages WHERE conversation_id = ?)", conversationID).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "convRepo.MarkReceiptsRead.Update: ")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "convRepo.MarkReceiptsRead.RowsAffected: ")
	}
	return affected, nil
}

// ListMessages pages (created_at, id) descending, strictly older than the
// cursor and strictly newer than the caller's soft-delete boundary.
func (r *ConversationRepository) ListMessages(ctx context.Context, conversationID uuid.UUID, cursor *chat.MessageCursor, deletedAfter *time.Time, limit int) ([]model.Message, error) {
	var msgs []model.Message
	q := r.db.NewSelect().
		Model(&msgs).
		Where("conversation_id = ?", conversationID)

	if cursor != nil {
		q = q.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}
	if deletedAfter != nil {
		q = q.Where("created_at > ?", *deletedAfter)
	}

	err := q.Order("created_at DESC", "id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "convRepo.ListMessages.Scan: ")
	}
	return msgs, nil
}

// ListConversations returns inbox rows for the caller with peer, last
// message and participant rows embedded in one round trip.
func (r *ConversationRepository) ListConversations(ctx context.Context, userID uuid.UUID, cursor *chat.ConversationCursor, limit int) ([]model.Conversation, error) {
	var convs []model.Conversation
	q := r.db.NewSelect().
		Model(&convs).
		Relation("Artist").
		Relation("Lover").
		Relation("LastMessage").
		Relation("Participants").
		Where("(conversation.artist_id = ? OR conversation.lover_id = ?)", userID, userID).
		Where("conversation.status IN (?)", bun.In(inboxStatuses))

	// Keyset over (last_message_at DESC NULLS LAST, id ASC).
	if cursor != nil {
		if cursor.LastMessageAt != nil {
			q = q.Where(
				"(conversation.last_message_at < ? OR conversation.last_message_at IS NULL OR (conversation.last_message_at = ? AND conversation.id > ?))",
				*cursor.LastMessageAt, *cursor.LastMessageAt, cursor.ID,
			)
		} else {
			q = q.Where("conversation.last_message_at IS NULL AND conversation.id > ?", cursor.ID)
		}
	}

	err := q.Order("conversation.last_message_at DESC NULLS LAST", "conversation.id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "convRepo.ListConversations.Scan: ")
	}
	return convs, nil
}

func (r *ConversationRepository) GetReceiptsByMessageIDs(ctx context.Context, messageIDs []uuid.UUID) ([]model.MessageReceipt, error) {
	if len(messageIDs) == 0 {
		return nil, nil
	}
	var receipts []model.MessageReceipt
	err := r.db.NewSelect().
		Model(&receipts).
		Where("message_id IN (?)", bun.In(messageIDs)).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "convRepo.GetReceiptsByMessageIDs.Scan: ")
	}
	return receipts, nil
}

func (r *ConversationRepository) GetIntake(ctx context.Context, conversationID uuid.UUID) (*model.ConversationIntake, error) {
	intake := new(model.ConversationIntake)
	err := r.db.NewSelect().Model(intake).Where("conversation_id = ?", conversationID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIntakeNotFound
		}
		return nil, errors.Wrap(err, "convRepo.GetIntake.Scan: ")
	}
	return intake, nil
}
