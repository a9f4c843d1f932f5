package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gokulsivas/ThinkSync/internal/authz"
	"github.com/gokulsivas/ThinkSync/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func profileApp(identity authz.Identity) (*fiber.App, *MockUserRepository, *MockProfileRepository) {
	s, userRepo, profileRepo := authServerWithMocks()

	app := fiber.New()
	profiles := app.Group("/profiles", asIdentity(identity))
	profiles.Get("/:id", s.GetProfile)
	profiles.Put("/:id", s.UpdateProfile)
	return app, userRepo, profileRepo
}

func TestGetProfile(t *testing.T) {
	target := &models.User{ID: 8, Email: "chen@tsinghua.edu", Name: "Chen Wei"}
	privateProfile := func() *models.Profile {
		return &models.Profile{
			UserID:           8,
			HIndex:           55,
			PublicationCount: 200,
			IsPublic:         false,
			IsActive:         true,
		}
	}

	t.Run("Private profile is redacted for another user", func(t *testing.T) {
		app, userRepo, profileRepo := profileApp(authz.Identity{UserID: 5, Role: models.RoleUser})
		userRepo.On("GetByID", mock.Anything, uint(8)).Return(target, nil)
		profileRepo.On("GetByUserID", mock.Anything, uint(8)).Return(privateProfile(), nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profiles/8", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		profile := body["profile"].(map[string]any)
		assert.Equal(t, "Chen Wei", profile["name"])
		_, hasHIndex := profile["h_index"]
		assert.False(t, hasHIndex)
		_, hasEmail := profile["email"]
		assert.False(t, hasEmail)
	})

	t.Run("Owner sees the full view", func(t *testing.T) {
		app, userRepo, profileRepo := profileApp(authz.Identity{UserID: 8, Role: models.RoleUser})
		userRepo.On("GetByID", mock.Anything, uint(8)).Return(target, nil)
		profileRepo.On("GetByUserID", mock.Anything, uint(8)).Return(privateProfile(), nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profiles/8", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		profile := body["profile"].(map[string]any)
		assert.Equal(t, float64(55), profile["h_index"])
		assert.Equal(t, "chen@tsinghua.edu", profile["email"])
	})

	t.Run("Admin sees the full view", func(t *testing.T) {
		app, userRepo, profileRepo := profileApp(adminIdentity())
		userRepo.On("GetByID", mock.Anything, uint(8)).Return(target, nil)
		profileRepo.On("GetByUserID", mock.Anything, uint(8)).Return(privateProfile(), nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profiles/8", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, float64(55), body["profile"].(map[string]any)["h_index"])
	})

	t.Run("Unknown user answers 404", func(t *testing.T) {
		app, userRepo, _ := profileApp(authz.Identity{UserID: 5, Role: models.RoleUser})
		userRepo.On("GetByID", mock.Anything, uint(42)).
			Return(nil, models.NewNotFoundError("User", uint(42)))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profiles/42", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Invalid id answers 400", func(t *testing.T) {
		app, _, _ := profileApp(authz.Identity{UserID: 5, Role: models.RoleUser})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profiles/zero", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdateProfile(t *testing.T) {
	owner := authz.Identity{UserID: 8, Role: models.RoleUser}

	t.Run("Profile fields are replaced wholesale", func(t *testing.T) {
		app, userRepo, profileRepo := profileApp(owner)

		userRepo.On("GetByID", mock.Anything, uint(8)).
			Return(&models.User{ID: 8, Email: "chen@tsinghua.edu", Name: "Chen Wei"}, nil)
		profileRepo.On("GetByUserID", mock.Anything, uint(8)).
			Return(&models.Profile{UserID: 8, HIndex: 55, Bio: "old bio", IsPublic: false}, nil)
		profileRepo.On("Save", mock.Anything, mock.MatchedBy(func(p *models.Profile) bool {
			// omitted fields reset; lists come back empty, not null
			return p.Bio == "new bio" && p.HIndex == 0 &&
				p.Awards != nil && len(p.Awards) == 0
		})).Return(nil)

		req := jsonRequest(t, http.MethodPut, "/profiles/8", map[string]any{
			"bio": "new bio",
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		userRepo.AssertNotCalled(t, "Update")
		profileRepo.AssertExpectations(t)
	})

	t.Run("Updating another user's profile answers 403", func(t *testing.T) {
		app, _, profileRepo := profileApp(authz.Identity{UserID: 5, Role: models.RoleUser})

		req := jsonRequest(t, http.MethodPut, "/profiles/8", map[string]any{
			"bio": "not yours",
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		profileRepo.AssertNotCalled(t, "Save")
	})

	t.Run("Negative h-index is coerced to zero", func(t *testing.T) {
		app, userRepo, profileRepo := profileApp(owner)

		userRepo.On("GetByID", mock.Anything, uint(8)).
			Return(&models.User{ID: 8, Name: "Chen Wei"}, nil)
		profileRepo.On("GetByUserID", mock.Anything, uint(8)).
			Return(&models.Profile{UserID: 8, HIndex: 55}, nil)
		profileRepo.On("Save", mock.Anything, mock.MatchedBy(func(p *models.Profile) bool {
			return p.HIndex == 0
		})).Return(nil)

		req := jsonRequest(t, http.MethodPut, "/profiles/8", map[string]any{
			"h_index": -3,
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		profileRepo.AssertExpectations(t)
	})

	t.Run("Name change also updates the user row", func(t *testing.T) {
		app, userRepo, profileRepo := profileApp(owner)

		userRepo.On("GetByID", mock.Anything, uint(8)).
			Return(&models.User{ID: 8, Email: "chen@tsinghua.edu", Name: "Chen Wei"}, nil)
		profileRepo.On("GetByUserID", mock.Anything, uint(8)).
			Return(&models.Profile{UserID: 8}, nil)
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Name == "Wei Chen"
		})).Return(nil)
		profileRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		req := jsonRequest(t, http.MethodPut, "/profiles/8", map[string]any{
			"name": "Wei Chen",
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		userRepo.AssertExpectations(t)
	})
}
