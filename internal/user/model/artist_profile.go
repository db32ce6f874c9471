package models

import (
	"time"

	"github.com/google/uuid"
)

// ArtistProfile extends an ARTIST user with the fields the browse/search
// screens filter on. Created during the registration workflow, upserted by
// user id so a retried registration resumes instead of duplicating.
type ArtistProfile struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`
	User   *User     `bun:"rel:belongs-to,join:user_id=id"`

	Styles   []string `bun:"type:jsonb"`
	Services []string `bun:"type:jsonb"`

	MinPrice int `bun:",nullzero"`

	StudioID *uuid.UUID `bun:",nullzero,type:uuid"`
	Studio   *Studio    `bun:"rel:belongs-to,join:studio_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
