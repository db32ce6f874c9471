package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"inklink/config"
	"inklink/internal/chat"
	"inklink/internal/chat/model"
	"inklink/internal/chat/realtime"
	chatRepo "inklink/internal/chat/repository"
	"inklink/internal/user"
	"inklink/pkg/errors"
	"inklink/pkg/logger"

	"github.com/google/uuid"
)

const (
	msgRequestAccepted = "Request accepted"
	msgRequestRejected = "Request rejected"
)

type ChatUsecase struct {
	repo   chat.ConversationRepository
	users  user.UserRepository
	broker *realtime.Broker
	logger logger.Logger
	config config.Config
}

func NewChatUsecase(repo chat.ConversationRepository, users user.UserRepository, broker *realtime.Broker, logger logger.Logger, config config.Config) *ChatUsecase {
	return &ChatUsecase{repo: repo, users: users, broker: broker, logger: logger, config: config}
}

// RequestConversation creates the whole request in one transactional write:
// conversation, both participant rows, the intake snapshot and its
// synthesized Q&A messages.
func (uc *ChatUsecase) RequestConversation(ctx context.Context, cmd chat.RequestConversationCommand) (uuid.UUID, error) {
	if cmd.ArtistID == cmd.LoverID {
		return uuid.Nil, errors.ErrSelfConversation
	}

	// Existence is re-verified right before the insert, not assumed from
	// session state.
	if _, err := uc.users.GetUserByID(ctx, cmd.ArtistID); err != nil {
		return uuid.Nil, errors.ErrUserNotFound
	}
	if _, err := uc.users.GetUserByID(ctx, cmd.LoverID); err != nil {
		return uuid.Nil, errors.ErrUserNotFound
	}

	now := time.Now()
	conv := &model.Conversation{
		ID:          uuid.New(),
		ArtistID:    cmd.ArtistID,
		LoverID:     cmd.LoverID,
		Status:      model.StatusRequested,
		RequestedBy: cmd.LoverID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	participants := []model.ConversationUser{
		{
			ConversationID: conv.ID,
			UserID:         cmd.LoverID,
			Role:           model.RoleLover,
			CanSend:        false,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ConversationID: conv.ID,
			UserID:         cmd.ArtistID,
			Role:           model.RoleArtist,
			CanSend:        true,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}

	intake := buildIntake(conv.ID, cmd.LoverID, cmd.Intake, now)
	messages := synthesizeIntakeMessages(conv.ID, cmd.ArtistID, cmd.LoverID, cmd.Intake, now)

	if len(messages) > 0 {
		last := messages[len(messages)-1]
		conv.LastMessageID = &last.ID
		conv.LastMessageAt = &last.CreatedAt
	}

	if err := uc.repo.CreateConversation(ctx, conv, participants, intake, messages); err != nil {
		uc.logger.Errorf("error while creating conversation request: %v", err)
		return uuid.Nil, errors.ErrRequestFailed(err)
	}

	uc.publishConversation(realtime.OpInsert, conv)
	return conv.ID, nil
}

// AcceptConversation moves REQUESTED → ACTIVE, grants the lover send
// permission and appends the "Request accepted" system message.
func (uc *ChatUsecase) AcceptConversation(ctx context.Context, artistID, conversationID uuid.UUID) error {
	conv, err := uc.conversationByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if conv.ArtistID != artistID {
		return errors.ErrNotConversationArtist
	}
	if conv.Status != model.StatusRequested {
		return errors.ErrRequestAlreadyHandled
	}

	moved, err := uc.repo.TransitionStatus(ctx, conversationID, model.StatusRequested, model.StatusActive)
	if err != nil {
		uc.logger.Errorf("error while accepting conversation: %v", err)
		return errors.Internal("error while accepting conversation")
	}
	if !moved {
		// Another caller handled the request between our read and write.
		return errors.ErrRequestAlreadyHandled
	}

	if err := uc.repo.SetParticipantCanSend(ctx, conversationID, conv.LoverID, true); err != nil {
		uc.logger.Errorf("error while granting send permission: %v", err)
		return errors.Internal("error while granting send permission")
	}
	conv.Status = model.StatusActive

	uc.appendSystemMessage(ctx, conv, msgRequestAccepted)
	uc.publishConversation(realtime.OpUpdate, conv)
	return nil
}

// RejectConversation moves REQUESTED → REJECTED. Terminal: the gate's edge
// table has no way back to ACTIVE, and the lover's canSend stays false.
func (uc *ChatUsecase) RejectConversation(ctx context.Context, artistID, conversationID uuid.UUID) error {
	conv, err := uc.conversationByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if conv.ArtistID != artistID {
		return errors.ErrNotConversationArtist
	}
	if conv.Status != model.StatusRequested {
		return errors.ErrRequestAlreadyHandled
	}

	moved, err := uc.repo.TransitionStatus(ctx, conversationID, model.StatusRequested, model.StatusRejected)
	if err != nil {
		uc.logger.Errorf("error while rejecting conversation: %v", err)
		return errors.Internal("error while rejecting conversation")
	}
	if !moved {
		return errors.ErrRequestAlreadyHandled
	}
	conv.Status = model.StatusRejected

	uc.appendSystemMessage(ctx, conv, msgRequestRejected)
	uc.publishConversation(realtime.OpUpdate, conv)
	return nil
}

// BlockConversation records a one-way block and moves the conversation to
// BLOCKED. The block is conversation-scoped; it does not touch other threads
// between the same pair.
func (uc *ChatUsecase) BlockConversation(ctx context.Context, blockerID, blockedID, conversationID uuid.UUID) error {
	if blockerID == blockedID {
		return errors.ErrSelfBlock
	}
	conv, err := uc.conversationByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conv.HasParticipant(blockerID) {
		return errors.ErrParticipantNotFound
	}

	block := &model.BlockedUser{
		ID:             uuid.New(),
		BlockerID:      blockerID,
		BlockedID:      blockedID,
		ConversationID: conversationID,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.InsertBlockedUser(ctx, block); err != nil {
		uc.logger.Errorf("error while recording block: %v", err)
		return errors.Internal("error while recording block")
	}

	if conv.Status == model.StatusBlocked {
		return nil
	}
	if conv.Status.CanTransitionTo(model.StatusBlocked) {
		if _, err := uc.repo.TransitionStatus(ctx, conversationID, conv.Status, model.StatusBlocked); err != nil {
			uc.logger.Errorf("error while blocking conversation: %v", err)
			return errors.Internal("error while blocking conversation")
		}
		conv.Status = model.StatusBlocked
		uc.publishConversation(realtime.OpUpdate, conv)
	}
	return nil
}

// DeleteConversationForUser hides messages created before now from this
// participant only. The conversation keeps existing and remains visible in
// both inboxes.
func (uc *ChatUsecase) DeleteConversationForUser(ctx context.Context, conversationID, userID uuid.UUID) error {
	if _, err := uc.participant(ctx, conversationID, userID); err != nil {
		return err
	}
	if err := uc.repo.SoftDeleteParticipant(ctx, conversationID, userID, time.Now()); err != nil {
		uc.logger.Errorf("error while soft-deleting conversation: %v", err)
		return errors.Internal("error while deleting conversation")
	}
	return nil
}

// SendMessage runs the delivery pipeline: gate check, receiver resolution,
// durable insert, then best-effort bookkeeping.
func (uc *ChatUsecase) SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (*chat.SendResult, error) {
	if cmd.MessageID == uuid.Nil {
		return nil, errors.ErrMissingMessageID
	}
	if cmd.Content == "" && cmd.MediaURL == "" {
		return nil, errors.ErrEmptyMessage
	}

	conv, err := uc.conversationByID(ctx, cmd.ConversationID)
	if err != nil {
		return nil, err
	}
	participant, err := uc.participant(ctx, cmd.ConversationID, cmd.SenderID)
	if err != nil {
		return nil, err
	}

	// A participant may send iff their own canSend is on and the
	// conversation is not in a terminal state.
	if !participant.CanSend || conv.Status.Terminal() {
		return nil, errors.ErrSendNotAllowed
	}

	receiverID := cmd.ReceiverID
	if receiverID == uuid.Nil {
		receiverID = conv.PeerOf(cmd.SenderID)
	}

	messageType := cmd.MessageType
	if messageType == "" {
		messageType = model.TypeText
	}

	now := time.Now()
	msg := &model.Message{
		ID:               cmd.MessageID,
		ConversationID:   conv.ID,
		SenderID:         cmd.SenderID,
		ReceiverID:       receiverID,
		MessageType:      messageType,
		Content:          cmd.Content,
		MediaURL:         cmd.MediaURL,
		ReplyToMessageID: cmd.ReplyToMessageID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	duplicate, err := uc.deliver(ctx, conv, msg)
	if err != nil {
		return nil, err
	}
	return &chat.SendResult{Message: msg, Duplicate: duplicate}, nil
}

// deliver performs steps 2-5 of the pipeline plus the realtime fanout.
// Only the message insert is fatal; once it lands the message is durable and
// the remaining writes merely keep receipts and counters honest.
func (uc *ChatUsecase) deliver(ctx context.Context, conv *model.Conversation, msg *model.Message) (duplicate bool, err error) {
	inserted, err := uc.repo.InsertMessage(ctx, msg)
	if err != nil {
		sendFailures.Inc()
		uc.logger.Errorf("error while inserting message: %v", err)
		return false, errors.ErrSendFailed(err)
	}
	if !inserted {
		// Same id already stored: a retried send, absorbed. Bookkeeping ran
		// on the first attempt.
		uc.logger.Info("duplicate message id absorbed", "message_id", msg.ID)
		return true, nil
	}

	receipt := &model.MessageReceipt{
		ID:        uuid.New(),
		MessageID: msg.ID,
		UserID:    msg.ReceiverID,
		Status:    model.ReceiptDelivered,
		CreatedAt: msg.CreatedAt,
	}
	if err := uc.repo.InsertReceipt(ctx, receipt); err != nil {
		bookkeepingFailures.WithLabelValues("receipt").Inc()
		uc.logger.Warn("receipt insert failed", "message_id", msg.ID, "err", err)
	}

	if err := uc.repo.TouchLastMessage(ctx, conv.ID, msg.ID, msg.CreatedAt); err != nil {
		bookkeepingFailures.WithLabelValues("aggregates").Inc()
		uc.logger.Warn("conversation aggregate update failed", "conversation_id", conv.ID, "err", err)
	}

	if err := uc.repo.IncrementUnread(ctx, conv.ID, msg.ReceiverID); err != nil {
		bookkeepingFailures.WithLabelValues("unread").Inc()
		uc.logger.Warn("unread increment failed", "conversation_id", conv.ID, "err", err)
	}

	messagesSent.WithLabelValues(string(msg.MessageType)).Inc()

	ev := realtime.Event{ID: msg.ID, Table: "messages", Op: realtime.OpInsert, Payload: msg, OccurredAt: msg.CreatedAt}
	uc.broker.Publish(realtime.MessagesTopic(conv.ID), ev)
	uc.publishConversation(realtime.OpUpdate, conv)
	return false, nil
}

// appendSystemMessage pushes a gate notification into the thread, addressed
// to the lover. Failures are logged only: the status change already landed.
func (uc *ChatUsecase) appendSystemMessage(ctx context.Context, conv *model.Conversation, content string) {
	now := time.Now()
	msg := &model.Message{
		ID:             uuid.New(),
		ConversationID: conv.ID,
		SenderID:       conv.ArtistID,
		ReceiverID:     conv.LoverID,
		MessageType:    model.TypeSystem,
		Content:        content,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := uc.deliver(ctx, conv, msg); err != nil {
		uc.logger.Warn("system message append failed", "conversation_id", conv.ID, "err", err)
	}
}

// MarkRead zeroes the caller's counter, then flips message isRead flags and
// upgrades receipts. The counter reset is the primary effect; the other two
// writes are independent and a failure leaves them stale, not the counter.
func (uc *ChatUsecase) MarkRead(ctx context.Context, conversationID, userID uuid.UUID) error {
	if _, err := uc.participant(ctx, conversationID, userID); err != nil {
		return err
	}

	now := time.Now()
	if err := uc.repo.ResetUnread(ctx, conversationID, userID, now); err != nil {
		uc.logger.Errorf("error while resetting unread count: %v", err)
		return errors.Internal("error while marking conversation read")
	}

	if _, err := uc.repo.MarkMessagesRead(ctx, conversationID, userID); err != nil {
		uc.logger.Warn("message read flags update failed", "conversation_id", conversationID, "err", err)
	}

	upgraded, err := uc.repo.MarkReceiptsRead(ctx, conversationID, userID, now)
	if err != nil {
		uc.logger.Warn("receipt upgrade failed", "conversation_id", conversationID, "err", err)
		return nil
	}
	if upgraded > 0 {
		ev := realtime.Event{ID: conversationID, Table: "message_receipts", Op: realtime.OpUpdate, OccurredAt: now}
		uc.broker.Publish(realtime.ReceiptsTopic(conversationID), ev)
	}
	return nil
}

func (uc *ChatUsecase) FetchMessages(ctx context.Context, q chat.MessagesQuery) (*chat.MessagesPage, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = uc.config.Chat.MessagesPageSize
	}
	if limit <= 0 {
		limit = 50
	}

	// The participant row carries the caller's soft-delete boundary.
	participant, err := uc.participant(ctx, q.ConversationID, q.UserID)
	if err != nil {
		return nil, err
	}

	msgs, err := uc.repo.ListMessages(ctx, q.ConversationID, q.Cursor, participant.DeletedAt, limit)
	if err != nil {
		uc.logger.Errorf("error while listing messages: %v", err)
		return nil, errors.Internal("error while listing messages")
	}

	page := &chat.MessagesPage{Messages: msgs}
	if len(msgs) == limit {
		last := msgs[len(msgs)-1]
		page.Next = &chat.MessageCursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}
	return page, nil
}

func (uc *ChatUsecase) FetchConversations(ctx context.Context, q chat.ConversationsQuery) (*chat.ConversationsPage, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = uc.config.Chat.ConversationsPageSize
	}
	if limit <= 0 {
		limit = 20
	}

	convs, err := uc.repo.ListConversations(ctx, q.UserID, q.Cursor, limit)
	if err != nil {
		uc.logger.Errorf("error while listing conversations: %v", err)
		return nil, errors.Internal("error while listing conversations")
	}

	// The seen flag for caller-sent last messages needs the peer's receipts.
	var sentLastIDs []uuid.UUID
	for i := range convs {
		if lm := convs[i].LastMessage; lm != nil && lm.SenderID == q.UserID {
			sentLastIDs = append(sentLastIDs, lm.ID)
		}
	}
	readByMessage := make(map[uuid.UUID]bool)
	if receipts, err := uc.repo.GetReceiptsByMessageIDs(ctx, sentLastIDs); err != nil {
		uc.logger.Warn("receipt lookup failed, seen flags degrade", "err", err)
	} else {
		for _, rec := range receipts {
			if rec.Status == model.ReceiptRead {
				readByMessage[rec.MessageID] = true
			}
		}
	}

	items := make([]chat.ConversationListItem, 0, len(convs))
	for i := range convs {
		items = append(items, uc.buildListItem(&convs[i], q.UserID, readByMessage))
	}

	page := &chat.ConversationsPage{Items: items}
	if len(convs) == limit {
		last := convs[len(convs)-1]
		page.Next = &chat.ConversationCursor{LastMessageAt: last.LastMessageAt, ID: last.ID}
	}
	return page, nil
}

func (uc *ChatUsecase) buildListItem(conv *model.Conversation, callerID uuid.UUID, readByMessage map[uuid.UUID]bool) chat.ConversationListItem {
	item := chat.ConversationListItem{
		ConversationID: conv.ID,
		Status:         conv.Status,
		PeerID:         conv.PeerOf(callerID),
		LastMessageAt:  conv.LastMessageAt,
		Preview:        "New conversation",
	}

	peer := conv.Artist
	if conv.ArtistID == callerID {
		peer = conv.Lover
	}
	if peer != nil {
		item.PeerHandle = peer.Handle
		item.PeerName = peer.Name
		item.PeerAvatarURL = peer.AvatarURL
	}

	for _, p := range conv.Participants {
		if p.UserID == callerID {
			item.UnreadCount = p.UnreadCount
		}
	}

	if lm := conv.LastMessage; lm != nil {
		item.Preview = lm.Preview()
		if lm.SenderID == callerID {
			// Sent by the caller: seen means the peer read it.
			item.Seen = readByMessage[lm.ID]
		} else {
			// Received: seen means the caller read it.
			item.Seen = lm.IsRead
		}
	}
	return item
}

func (uc *ChatUsecase) GetIntake(ctx context.Context, conversationID, userID uuid.UUID) (*model.ConversationIntake, error) {
	if _, err := uc.participant(ctx, conversationID, userID); err != nil {
		return nil, err
	}
	intake, err := uc.repo.GetIntake(ctx, conversationID)
	if err != nil {
		if stderrors.Is(err, chatRepo.ErrIntakeNotFound) {
			return nil, errors.ErrIntakeNotFound
		}
		uc.logger.Errorf("error while fetching intake: %v", err)
		return nil, errors.Internal("error while fetching intake")
	}
	return intake, nil
}

func (uc *ChatUsecase) conversationByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	conv, err := uc.repo.GetConversationByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, chatRepo.ErrConversationNotFound) {
			return nil, errors.ErrConversationNotFound
		}
		uc.logger.Error("database error fetching conversation", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return conv, nil
}

func (uc *ChatUsecase) participant(ctx context.Context, conversationID, userID uuid.UUID) (*model.ConversationUser, error) {
	p, err := uc.repo.GetParticipant(ctx, conversationID, userID)
	if err != nil {
		if stderrors.Is(err, chatRepo.ErrParticipantNotFound) {
			return nil, errors.ErrParticipantNotFound
		}
		uc.logger.Error("database error fetching participant", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return p, nil
}

func (uc *ChatUsecase) publishConversation(op realtime.Op, conv *model.Conversation) {
	ev := realtime.Event{ID: conv.ID, Table: "conversations", Op: op, Payload: conv, OccurredAt: time.Now()}
	uc.broker.Publish(realtime.ConversationsTopic(conv.ArtistID), ev)
	uc.broker.Publish(realtime.ConversationsTopic(conv.LoverID), ev)
}
