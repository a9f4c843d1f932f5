package service

import (
	"context"

	"github.com/gokulsivas/ThinkSync/internal/models"
	"github.com/gokulsivas/ThinkSync/internal/repository"
	"github.com/gokulsivas/ThinkSync/internal/validation"
)

// ProfileService reads and mutates researcher profiles and decides which
// fields a given viewer may see.
type ProfileService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// UpdateProfileInput is the profile update payload. The profile fields are
// replaced wholesale on every update: omitted strings persist as empty,
// omitted lists as empty lists, omitted counters as zero. Only the user-row
// fields (name, title, affiliation) are pointers, updated when sent.
type UpdateProfileInput struct {
	Name              *string            `json:"name" validate:"omitempty,min=1,max=200"`
	Title             *string            `json:"title" validate:"omitempty,max=200"`
	Affiliation       *string            `json:"affiliation" validate:"omitempty,max=300"`
	HIndex            int                `json:"h_index"`
	Bio               string             `json:"bio" validate:"max=5000"`
	Website           string             `json:"website" validate:"omitempty,url"`
	ResearchInterests []string           `json:"research_interests"`
	Awards            []string           `json:"awards"`
	SocialLinks       models.SocialLinks `json:"social_links"`
	IsPublic          bool               `json:"is_public"`
	Region            string             `json:"region" validate:"max=100"`
	InstitutionType   string             `json:"institution_type" validate:"max=100"`
	FundingStatus     string             `json:"funding_status" validate:"max=100"`
	PublicationCount  int                `json:"publication_count"`
	IsActive          bool               `json:"is_active"`
}

// NewProfileService returns a new ProfileService.
func NewProfileService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo, profileRepo: profileRepo}
}

// GetView returns the merged profile for targetID as seen by the viewer.
// Owners and admins always get the full view; everyone else gets a redacted
// view when the profile is private.
func (s *ProfileService) GetView(ctx context.Context, viewerID uint, viewerIsAdmin bool, targetID uint) (*models.ProfileView, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.GetByUserID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	redact := !profile.IsPublic && viewerID != targetID && !viewerIsAdmin
	view := models.NewProfileView(user, profile, redact)
	return &view, nil
}

// Update replaces the caller's profile fields in one write. A negative
// h-index or publication count is coerced to zero, omitted lists persist
// as empty lists.
func (s *ProfileService) Update(ctx context.Context, userID uint, in UpdateProfileInput) (*models.ProfileView, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	userChanged := false
	if in.Name != nil {
		user.Name = *in.Name
		userChanged = true
	}
	if in.Title != nil {
		user.Title = *in.Title
		userChanged = true
	}
	if in.Affiliation != nil {
		user.Affiliation = *in.Affiliation
		userChanged = true
	}

	profile.HIndex = in.HIndex
	profile.Bio = in.Bio
	profile.Website = in.Website
	profile.ResearchInterests = in.ResearchInterests
	profile.Awards = in.Awards
	profile.SocialLinks = in.SocialLinks
	profile.IsPublic = in.IsPublic
	profile.Region = in.Region
	profile.InstitutionType = in.InstitutionType
	profile.FundingStatus = in.FundingStatus
	profile.PublicationCount = in.PublicationCount
	profile.IsActive = in.IsActive
	profile.Normalize()

	if userChanged {
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	view := models.NewProfileView(user, profile, false)
	return &view, nil
}
