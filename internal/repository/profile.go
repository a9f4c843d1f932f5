package repository

import (
	"context"
	"errors"

	"github.com/gokulsivas/ThinkSync/internal/cache"
	"github.com/gokulsivas/ThinkSync/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for researcher profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Save(ctx context.Context, profile *models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

// profileRecord is the cache shape for a profile row. The profile's API
// JSON hides the primary key, so the record carries it alongside; a cached
// profile with ID 0 would INSERT on Save instead of updating.
type profileRecord struct {
	Profile models.Profile `json:"profile"`
	ID      uint           `json:"id"`
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var rec profileRecord
	key := cache.ProfileKey(userID)

	err := cache.Aside(ctx, key, &rec, cache.ProfileTTL, func() error {
		var profile models.Profile
		if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Profile", userID)
			}
			return models.NewInternalError(err)
		}
		rec = profileRecord{Profile: profile, ID: profile.ID}
		return nil
	})

	if err != nil {
		return nil, err
	}
	profile := rec.Profile
	profile.ID = rec.ID
	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	profile.Normalize()
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	profile.Normalize()
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}
