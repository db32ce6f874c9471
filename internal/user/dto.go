package user

import (
	"github.com/google/uuid"

	models "inklink/internal/user/model"
)

// NOTE: commands travel from handler to usecase,
// DTOs travel from usecase to handler.

// RegisterCommand assembles a full profile in one call. UserID is generated
// by the caller and reused on retries, so a re-submitted registration
// resumes instead of duplicating.
type RegisterCommand struct {
	UserID      uuid.UUID
	Handle      string
	DisplayName string
	Role        models.Role

	AvatarURL string
	Bio       string
	City      string

	// Artist-only extras; nil for lovers.
	Artist *ArtistProfileUpload

	// Optional studio to join as part of onboarding.
	StudioID *uuid.UUID
}

type ArtistProfileUpload struct {
	Styles   []string
	Services []string
	MinPrice int
}

// Output DTOs
type UserDTO struct {
	ID          uuid.UUID
	Handle      string
	DisplayName string
	Role        models.Role
}

type UserProfileDTO struct {
	ID          uuid.UUID
	Handle      string
	DisplayName string
	Role        models.Role
	AvatarURL   string
	Bio         string
	City        string

	Styles   []string
	Services []string
}

type StudioMemberDTO struct {
	UserID      uuid.UUID
	Handle      string
	DisplayName string
	Role        string
}
