package service

import (
	"context"
	"testing"

	"github.com/gokulsivas/ThinkSync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func privateProfileRepos() (*userRepoStub, *profileRepoStub) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Name: "Chen Wei", Email: "chen@uni.edu", Role: models.RoleUser}, nil
	}
	profileRepo := noopProfileRepo()
	profileRepo.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
		return &models.Profile{
			UserID: userID, HIndex: 55, PublicationCount: 200,
			Awards:      []string{"Best Paper 2025"},
			SocialLinks: models.SocialLinks{ORCID: "0000-0001"},
			Bio:         "Large models, small robots",
			IsPublic:    false, IsActive: true,
		}, nil
	}
	return userRepo, profileRepo
}

func TestProfileService_GetView_Redaction(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(privateProfileRepos())

	t.Run("stranger gets redacted view of a private profile", func(t *testing.T) {
		view, err := svc.GetView(ctx, 9, false, 3)
		require.NoError(t, err)
		assert.Nil(t, view.HIndex)
		assert.Nil(t, view.SocialLinks)
		assert.Nil(t, view.PublicationCount)
		assert.Empty(t, view.Awards)
		assert.Empty(t, view.Email)
		// Public basics remain visible
		assert.Equal(t, "Chen Wei", view.Name)
		assert.Equal(t, "Large models, small robots", view.Bio)
	})

	t.Run("owner sees the full view", func(t *testing.T) {
		view, err := svc.GetView(ctx, 3, false, 3)
		require.NoError(t, err)
		require.NotNil(t, view.HIndex)
		assert.Equal(t, 55, *view.HIndex)
		assert.Equal(t, []string{"Best Paper 2025"}, view.Awards)
		assert.Equal(t, "chen@uni.edu", view.Email)
	})

	t.Run("admin sees the full view", func(t *testing.T) {
		view, err := svc.GetView(ctx, 9, true, 3)
		require.NoError(t, err)
		assert.NotNil(t, view.HIndex)
	})
}

func TestProfileService_Update(t *testing.T) {
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }

	t.Run("update replaces the profile fields wholesale", func(t *testing.T) {
		var savedProfile *models.Profile
		var savedUser *models.User
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Name: "Old Name", Title: "Professor"}, nil
		}
		userRepo.updateFn = func(_ context.Context, u *models.User) error {
			savedUser = u
			return nil
		}
		profileRepo := noopProfileRepo()
		profileRepo.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
			return &models.Profile{UserID: userID, HIndex: 10, Bio: "old bio", IsPublic: true}, nil
		}
		profileRepo.saveFn = func(_ context.Context, p *models.Profile) error {
			savedProfile = p
			return nil
		}
		svc := NewProfileService(userRepo, profileRepo)

		view, err := svc.Update(ctx, 3, UpdateProfileInput{
			Name:              strPtr("New Name"),
			HIndex:            12,
			Bio:               "new bio",
			ResearchInterests: []string{"ML", "Robotics"},
			IsPublic:          true,
			IsActive:          true,
		})
		require.NoError(t, err)

		require.NotNil(t, savedUser)
		assert.Equal(t, "New Name", savedUser.Name)
		assert.Equal(t, "Professor", savedUser.Title)

		require.NotNil(t, savedProfile)
		assert.Equal(t, 12, savedProfile.HIndex)
		assert.Equal(t, "new bio", savedProfile.Bio)
		assert.Equal(t, []string{"ML", "Robotics"}, savedProfile.ResearchInterests)

		require.NotNil(t, view.HIndex)
		assert.Equal(t, 12, *view.HIndex)
		assert.Equal(t, []string{"ML", "Robotics"}, view.ResearchInterests)
	})

	t.Run("omitted fields reset to empty, lists never persist as null", func(t *testing.T) {
		var savedProfile *models.Profile
		profileRepo := noopProfileRepo()
		profileRepo.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
			return &models.Profile{
				UserID: userID, HIndex: 10, Bio: "old bio",
				Awards: []string{"Best Paper 2025"},
			}, nil
		}
		profileRepo.saveFn = func(_ context.Context, p *models.Profile) error {
			savedProfile = p
			return nil
		}
		svc := NewProfileService(noopUserRepo(), profileRepo)

		_, err := svc.Update(ctx, 3, UpdateProfileInput{Bio: "only bio"})
		require.NoError(t, err)

		require.NotNil(t, savedProfile)
		assert.Equal(t, "only bio", savedProfile.Bio)
		assert.Equal(t, 0, savedProfile.HIndex)
		assert.NotNil(t, savedProfile.Awards)
		assert.Empty(t, savedProfile.Awards)
		assert.NotNil(t, savedProfile.ResearchInterests)
		assert.Empty(t, savedProfile.ResearchInterests)
	})

	t.Run("user row untouched when only profile fields change", func(t *testing.T) {
		userRepo := noopUserRepo()
		userRepo.updateFn = func(_ context.Context, _ *models.User) error {
			t.Fatal("user update should not be called")
			return nil
		}
		svc := NewProfileService(userRepo, noopProfileRepo())

		_, err := svc.Update(ctx, 3, UpdateProfileInput{Bio: "new bio"})
		assert.NoError(t, err)
	})

	t.Run("negative metrics are coerced to zero", func(t *testing.T) {
		var savedProfile *models.Profile
		profileRepo := noopProfileRepo()
		profileRepo.saveFn = func(_ context.Context, p *models.Profile) error {
			savedProfile = p
			return nil
		}
		svc := NewProfileService(noopUserRepo(), profileRepo)

		_, err := svc.Update(ctx, 3, UpdateProfileInput{HIndex: -1, PublicationCount: -5})
		require.NoError(t, err)
		require.NotNil(t, savedProfile)
		assert.Equal(t, 0, savedProfile.HIndex)
		assert.Equal(t, 0, savedProfile.PublicationCount)
	})

	t.Run("invalid website is rejected", func(t *testing.T) {
		svc := NewProfileService(noopUserRepo(), noopProfileRepo())
		_, err := svc.Update(ctx, 3, UpdateProfileInput{Website: "not a url"})
		assertValidationError(t, err)
	})

	t.Run("visibility can be toggled off", func(t *testing.T) {
		var savedProfile *models.Profile
		profileRepo := noopProfileRepo()
		profileRepo.saveFn = func(_ context.Context, p *models.Profile) error {
			savedProfile = p
			return nil
		}
		svc := NewProfileService(noopUserRepo(), profileRepo)

		_, err := svc.Update(ctx, 3, UpdateProfileInput{IsPublic: false})
		require.NoError(t, err)
		require.NotNil(t, savedProfile)
		assert.False(t, savedProfile.IsPublic)
	})
}
