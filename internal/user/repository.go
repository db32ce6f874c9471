package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	models "inklink/internal/user/model"
)

type UserRepository interface {
	// RegisterProfile upserts the user row, the optional artist profile and
	// the optional studio membership in one transaction. Every write is
	// keyed so a retried registration is safe.
	RegisterProfile(ctx context.Context, u *models.User, profile *models.ArtistProfile, membership *models.StudioMember) error

	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByHandle(ctx context.Context, handle string) (*models.User, error)
	HandleExists(ctx context.Context, handle string) (bool, error)
	UpdateUserDisplayName(ctx context.Context, userID uuid.UUID, newName string) error

	GetArtistProfile(ctx context.Context, userID uuid.UUID) (*models.ArtistProfile, error)

	GetStudioByID(ctx context.Context, id uuid.UUID) (*models.Studio, error)
	AddStudioMember(ctx context.Context, member *models.StudioMember) error
	RemoveStudioMember(ctx context.Context, studioID, userID uuid.UUID, at time.Time) error
	ListStudioMembers(ctx context.Context, studioID uuid.UUID) ([]models.StudioMember, error)
}
