package models

import "time"

// SocialLinks holds the named optional profile URLs.
type SocialLinks struct {
	ORCID         string `json:"orcid"`
	GoogleScholar string `json:"google_scholar"`
	LinkedIn      string `json:"linkedin"`
	GitHub        string `json:"github"`
}

// Profile is the researcher profile attached 1:1 to a User. It is created
// empty at registration and mutated only by the owning user.
type Profile struct {
	ID                uint        `gorm:"primaryKey" json:"-"`
	UserID            uint        `gorm:"not null;uniqueIndex" json:"user_id"`
	HIndex            int         `gorm:"default:0" json:"h_index"`
	Bio               string      `gorm:"type:text" json:"bio"`
	Website           string      `json:"website"`
	ResearchInterests []string    `gorm:"serializer:json" json:"research_interests"`
	Awards            []string    `gorm:"serializer:json" json:"awards"`
	SocialLinks       SocialLinks `gorm:"serializer:json" json:"social_links"`
	IsPublic          bool        `gorm:"default:true" json:"is_public"`
	Region            string      `json:"region"`
	InstitutionType   string      `json:"institution_type"`
	FundingStatus     string      `json:"funding_status"`
	PublicationCount  int         `gorm:"default:0" json:"publication_count"`
	IsActive          bool        `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// Normalize coerces fields into their stored invariants: h-index is never
// negative and list fields persist as empty lists, not null.
func (p *Profile) Normalize() {
	if p.HIndex < 0 {
		p.HIndex = 0
	}
	if p.PublicationCount < 0 {
		p.PublicationCount = 0
	}
	if p.ResearchInterests == nil {
		p.ResearchInterests = []string{}
	}
	if p.Awards == nil {
		p.Awards = []string{}
	}
}

// ProfileView is the merged User+Profile view returned by the profile routes.
type ProfileView struct {
	UserID            uint        `json:"user_id"`
	Name              string      `json:"name"`
	Email             string      `json:"email,omitempty"`
	Title             string      `json:"title"`
	Affiliation       string      `json:"affiliation"`
	Role              Role        `json:"role"`
	HIndex            *int        `json:"h_index,omitempty"`
	Bio               string      `json:"bio"`
	Website           string      `json:"website"`
	ResearchInterests []string    `json:"research_interests"`
	Awards            []string    `json:"awards,omitempty"`
	SocialLinks       *SocialLinks `json:"social_links,omitempty"`
	IsPublic          bool        `json:"is_public"`
	Region            string      `json:"region"`
	InstitutionType   string      `json:"institution_type"`
	FundingStatus     string      `json:"funding_status"`
	PublicationCount  *int        `json:"publication_count,omitempty"`
	IsActive          bool        `json:"is_active"`
}

// NewProfileView merges a user row and its profile into the API view.
// When redact is true the private-profile fields (h-index, awards, social
// links, publication count, email) are suppressed.
func NewProfileView(user *User, profile *Profile, redact bool) ProfileView {
	profile.Normalize()
	view := ProfileView{
		UserID:            user.ID,
		Name:              user.Name,
		Title:             user.Title,
		Affiliation:       user.Affiliation,
		Role:              user.Role,
		Bio:               profile.Bio,
		Website:           profile.Website,
		ResearchInterests: profile.ResearchInterests,
		IsPublic:          profile.IsPublic,
		Region:            profile.Region,
		InstitutionType:   profile.InstitutionType,
		FundingStatus:     profile.FundingStatus,
		IsActive:          profile.IsActive,
	}
	if redact {
		return view
	}
	hIndex := profile.HIndex
	pubs := profile.PublicationCount
	links := profile.SocialLinks
	view.Email = user.Email
	view.HIndex = &hIndex
	view.Awards = profile.Awards
	view.SocialLinks = &links
	view.PublicationCount = &pubs
	return view
}
