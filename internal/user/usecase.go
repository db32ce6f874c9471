package user

import (
	"context"

	"github.com/google/uuid"
)

type UserUsecase interface {
	// Register runs the multi-entity onboarding write: user + artist profile
	// + optional studio membership. On a handle collision with a different
	// account it falls back to a suffixed handle.
	Register(ctx context.Context, cmd RegisterCommand) (*UserDTO, error)

	// Update display name only (handle is immutable)
	UpdateDisplayName(ctx context.Context, userID uuid.UUID, newName string) error

	GetUserProfile(ctx context.Context, userID uuid.UUID) (*UserProfileDTO, error)
	GetUserProfileByHandle(ctx context.Context, handle string) (*UserProfileDTO, error)

	JoinStudio(ctx context.Context, studioID, userID uuid.UUID, role string) error
	LeaveStudio(ctx context.Context, studioID, userID uuid.UUID) error
	ListStudioMembers(ctx context.Context, studioID uuid.UUID) ([]StudioMemberDTO, error)
}
