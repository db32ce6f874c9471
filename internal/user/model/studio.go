package models

import (
	"time"

	"github.com/google/uuid"
)

type Studio struct {
	ID uuid.UUID `bun:",pk,type:uuid"`

	Name string `bun:",notnull"`
	City string `bun:",nullzero"`

	OwnerID uuid.UUID `bun:",notnull,type:uuid"`
	Owner   *User     `bun:"rel:belongs-to,join:owner_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

type StudioMember struct {
	StudioID uuid.UUID `bun:",pk,type:uuid"`
	Studio   *Studio   `bun:"rel:belongs-to,join:studio_id=id"`

	UserID uuid.UUID `bun:",pk,type:uuid"`
	User   *User     `bun:"rel:belongs-to,join:user_id=id"`

	Role string `bun:",notnull,default:'member'"` // owner, manager, member

	JoinedAt time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	LeftAt   *time.Time `bun:",nullzero"`
}
