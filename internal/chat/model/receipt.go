package model

import (
	"time"

	"github.com/google/uuid"
)

type ReceiptStatus string

const (
	ReceiptDelivered ReceiptStatus = "DELIVERED"
	ReceiptRead      ReceiptStatus = "READ"
)

// MessageReceipt tracks the receiver's consumption of a message so the
// sender's UI can show "seen". Upgraded DELIVERED → READ only, never back.
type MessageReceipt struct {
	ID uuid.UUID `bun:",pk,type:uuid"`

	MessageID uuid.UUID `bun:",notnull,type:uuid"`
	Message   *Message  `bun:"rel:belongs-to,join:message_id=id"`

	// The receiver, not the sender.
	UserID uuid.UUID `bun:",notnull,type:uuid"`

	Status ReceiptStatus `bun:",notnull,default:'DELIVERED'"`

	CreatedAt time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	ReadAt    *time.Time `bun:",nullzero"`
}
