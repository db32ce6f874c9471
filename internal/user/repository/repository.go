package repository

import (
	"context"
	"database/sql"
	"time"

	models "inklink/internal/user/model"
	"inklink/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrStudioNotFound = errors.New("studio not found")
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewUserRepository(db *bun.DB, logger logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *UserRepository) RegisterProfile(ctx context.Context, u *models.User, profile *models.ArtistProfile, membership *models.StudioMember) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(u).
			On("CONFLICT (id) DO UPDATE").
			Set("handle = EXCLUDED.handle").
			Set("name = EXCLUDED.name").
			Set("avatar_url = EXCLUDED.avatar_url").
			Set("bio = EXCLUDED.bio").
			Set("city = EXCLUDED.city").
			Set("updated_at = EXCLUDED.updated_at").
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "userRepo.RegisterProfile.UpsertUser: ")
		}

		if profile != nil {
			_, err = tx.NewInsert().
				Model(profile).
				On("CONFLICT (user_id) DO UPDATE").
				Set("styles = EXCLUDED.styles").
				Set("services = EXCLUDED.services").
				Set("min_price = EXCLUDED.min_price").
				Set("studio_id = EXCLUDED.studio_id").
				Set("updated_at = EXCLUDED.updated_at").
				Exec(ctx)
			if err != nil {
				return errors.Wrap(err, "userRepo.RegisterProfile.UpsertArtistProfile: ")
			}
		}

		if membership != nil {
			_, err = tx.NewInsert().
				Model(membership).
				On("CONFLICT (studio_id, user_id) DO NOTHING").
				Exec(ctx)
			if err != nil {
				return errors.Wrap(err, "userRepo.RegisterProfile.InsertStudioMember: ")
			}
		}

		return nil
	})
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) GetUserByHandle(ctx context.Context, handle string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("handle = ?", handle).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByHandle.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) HandleExists(ctx context.Context, handle string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Where("handle = ?", handle).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.HandleExists.Exists: ")
	}
	return exists, nil
}

func (r *UserRepository) UpdateUserDisplayName(ctx context.Context, userID uuid.UUID, newName string) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("name = ?", newName).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateUserDisplayName.Update: ")
	}
	return nil
}

func (r *UserRepository) GetArtistProfile(ctx context.Context, userID uuid.UUID) (*models.ArtistProfile, error) {
	profile := new(models.ArtistProfile)
	err := r.db.NewSelect().Model(profile).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetArtistProfile.Scan: ")
	}
	return profile, nil
}

func (r *UserRepository) GetStudioByID(ctx context.Context, id uuid.UUID) (*models.Studio, error) {
	studio := new(models.Studio)
	err := r.db.NewSelect().Model(studio).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudioNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetStudioByID.Scan: ")
	}
	return studio, nil
}

func (r *UserRepository) AddStudioMember(ctx context.Context, member *models.StudioMember) error {
	_, err := r.db.NewInsert().
		Model(member).
		On("CONFLICT (studio_id, user_id) DO UPDATE").
		Set("role = EXCLUDED.role").
		Set("left_at = NULL").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.AddStudioMember.Insert: ")
	}
	return nil
}

func (r *UserRepository) RemoveStudioMember(ctx context.Context, studioID, userID uuid.UUID, at time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*models.StudioMember)(nil)).
		Set("left_at = ?", at).
		Where("studio_id = ? AND user_id = ?", studioID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.RemoveStudioMember.Update: ")
	}
	return nil
}

func (r *UserRepository) ListStudioMembers(ctx context.Context, studioID uuid.UUID) ([]models.StudioMember, error) {
	var members []models.StudioMember
	err := r.db.NewSelect().
		Model(&members).
		Relation("User").
		Where("studio_member.studio_id = ? AND studio_member.left_at IS NULL", studioID).
		Order("studio_member.joined_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.ListStudioMembers.Scan: ")
	}
	return members, nil
}
