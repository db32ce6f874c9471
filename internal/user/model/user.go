package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleArtist Role = "ARTIST"
	RoleLover  Role = "LOVER"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid"`

	// Handle = unique @name used for lookup and identity
	Handle string `bun:",unique,notnull"`

	// Name = display name shown in chats and profiles (can be changed freely)
	Name string `bun:",notnull"`

	Role Role `bun:",notnull"`

	AvatarURL string `bun:",nullzero"`
	Bio       string `bun:",nullzero"`
	City      string `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
