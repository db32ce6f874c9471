package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"
	"time"

	"inklink/config"
	"inklink/internal/user"
	models "inklink/internal/user/model"
	"inklink/internal/user/repository"
	"inklink/pkg/errors"
	"inklink/pkg/logger"

	"github.com/google/uuid"
)

type UserUsecase struct {
	repo   user.UserRepository
	logger logger.Logger
	config config.Config
}

func NewUserUsecase(repo user.UserRepository, logger logger.Logger, config config.Config) *UserUsecase {
	return &UserUsecase{repo: repo, logger: logger, config: config}
}

var handleRegex = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

func validateHandle(handle string) error {
	if !handleRegex.MatchString(handle) {
		return errors.ErrInvalidHandle
	}
	return nil
}

// Register assembles the whole profile in one transactional write. The
// command's UserID is the idempotency key: re-submitting the same
// registration upserts instead of duplicating. A handle held by a different
// account falls back to a numeric suffix rather than failing onboarding.
func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.UserDTO, error) {
	if err := validateHandle(cmd.Handle); err != nil {
		return nil, err
	}
	if cmd.DisplayName == "" {
		return nil, errors.ErrInvalidDisplayName
	}
	if cmd.Role != models.RoleArtist && cmd.Role != models.RoleLover {
		return nil, errors.ErrInvalidRole
	}
	if cmd.UserID == uuid.Nil {
		return nil, errors.InvalidArg("user id must be generated by the caller")
	}

	handle, err := uc.resolveHandle(ctx, cmd.UserID, cmd.Handle)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		ID:        cmd.UserID,
		Handle:    handle,
		Name:      cmd.DisplayName,
		Role:      cmd.Role,
		AvatarURL: cmd.AvatarURL,
		Bio:       cmd.Bio,
		City:      cmd.City,
		UpdatedAt: time.Now(),
	}

	var profile *models.ArtistProfile
	if cmd.Role == models.RoleArtist {
		profile = &models.ArtistProfile{
			UserID:    cmd.UserID,
			StudioID:  cmd.StudioID,
			UpdatedAt: time.Now(),
		}
		if cmd.Artist != nil {
			profile.Styles = cmd.Artist.Styles
			profile.Services = cmd.Artist.Services
			profile.MinPrice = cmd.Artist.MinPrice
		}
	}

	var membership *models.StudioMember
	if cmd.StudioID != nil {
		if _, err := uc.repo.GetStudioByID(ctx, *cmd.StudioID); err != nil {
			return nil, errors.ErrStudioNotFound
		}
		membership = &models.StudioMember{
			StudioID: *cmd.StudioID,
			UserID:   cmd.UserID,
			Role:     "member",
		}
	}

	if err := uc.repo.RegisterProfile(ctx, u, profile, membership); err != nil {
		uc.logger.Errorf("error while saving profile in db: %v", err)
		return nil, errors.ErrRegistrationFailed(errors.Internal("database error"))
	}

	return &user.UserDTO{
		ID:          u.ID,
		Handle:      u.Handle,
		DisplayName: u.Name,
		Role:        u.Role,
	}, nil
}

// resolveHandle keeps the requested handle when it is free or already owned
// by this user id (retry), otherwise probes suffixed variants.
func (uc *UserUsecase) resolveHandle(ctx context.Context, userID uuid.UUID, requested string) (string, error) {
	owner, err := uc.repo.GetUserByHandle(ctx, requested)
	if err != nil {
		if stderrors.Is(err, repository.ErrUserNotFound) {
			return requested, nil
		}
		uc.logger.Error("database error checking handle", "err", err)
		return "", errors.Internal("internal server error")
	}
	if owner.ID == userID {
		return requested, nil
	}

	for i := 2; i <= 20; i++ {
		candidate := fmt.Sprintf("%s%d", requested, i)
		exists, err := uc.repo.HandleExists(ctx, candidate)
		if err != nil {
			uc.logger.Error("database error checking handle", "err", err)
			return "", errors.Internal("internal server error")
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", errors.ErrHandleTaken
}

func (uc *UserUsecase) UpdateDisplayName(ctx context.Context, userID uuid.UUID, newName string) error {
	if newName == "" {
		return errors.ErrInvalidDisplayName
	}
	err := uc.repo.UpdateUserDisplayName(ctx, userID, newName)
	if err != nil {
		uc.logger.Errorf("error while updating display name in db: %v", err)
		return errors.Internal("error while updating display name in db")
	}
	return nil
}

func (uc *UserUsecase) GetUserProfile(ctx context.Context, userID uuid.UUID) (*user.UserProfileDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	return uc.buildProfile(ctx, u)
}

func (uc *UserUsecase) GetUserProfileByHandle(ctx context.Context, handle string) (*user.UserProfileDTO, error) {
	u, err := uc.repo.GetUserByHandle(ctx, handle)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	return uc.buildProfile(ctx, u)
}

func (uc *UserUsecase) buildProfile(ctx context.Context, u *models.User) (*user.UserProfileDTO, error) {
	dto := &user.UserProfileDTO{
		ID:          u.ID,
		Handle:      u.Handle,
		DisplayName: u.Name,
		Role:        u.Role,
		AvatarURL:   u.AvatarURL,
		Bio:         u.Bio,
		City:        u.City,
	}
	if u.Role == models.RoleArtist {
		profile, err := uc.repo.GetArtistProfile(ctx, u.ID)
		if err == nil {
			dto.Styles = profile.Styles
			dto.Services = profile.Services
		}
	}
	return dto, nil
}

func (uc *UserUsecase) JoinStudio(ctx context.Context, studioID, userID uuid.UUID, role string) error {
	if _, err := uc.repo.GetStudioByID(ctx, studioID); err != nil {
		return errors.ErrStudioNotFound
	}
	if _, err := uc.repo.GetUserByID(ctx, userID); err != nil {
		return errors.ErrUserNotFound
	}
	if role == "" {
		role = "member"
	}
	member := &models.StudioMember{
		StudioID: studioID,
		UserID:   userID,
		Role:     role,
	}
	if err := uc.repo.AddStudioMember(ctx, member); err != nil {
		uc.logger.Errorf("error while adding studio member: %v", err)
		return errors.Internal("error while adding studio member")
	}
	return nil
}

func (uc *UserUsecase) LeaveStudio(ctx context.Context, studioID, userID uuid.UUID) error {
	if err := uc.repo.RemoveStudioMember(ctx, studioID, userID, time.Now()); err != nil {
		uc.logger.Errorf("error while removing studio member: %v", err)
		return errors.Internal("error while removing studio member")
	}
	return nil
}

func (uc *UserUsecase) ListStudioMembers(ctx context.Context, studioID uuid.UUID) ([]user.StudioMemberDTO, error) {
	members, err := uc.repo.ListStudioMembers(ctx, studioID)
	if err != nil {
		uc.logger.Errorf("error while listing studio members: %v", err)
		return nil, errors.Internal("error while listing studio members")
	}
	out := make([]user.StudioMemberDTO, 0, len(members))
	for _, m := range members {
		dto := user.StudioMemberDTO{UserID: m.UserID, Role: m.Role}
		if m.User != nil {
			dto.Handle = m.User.Handle
			dto.DisplayName = m.User.Name
		}
		out = append(out, dto)
	}
	return out, nil
}
